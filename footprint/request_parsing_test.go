package footprint

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/jonathansick-shadow/skymap/util"
	"github.com/stretchr/testify/assert"
)

func TestParseIDList(t *testing.T) {
	ids, err := ParseIDList("6866^6867^6868")
	assert.Nil(t, err)
	assert.Equal(t, []int{6866, 6867, 6868}, ids)

	ids, err = ParseIDList("42")
	assert.Nil(t, err)
	assert.Equal(t, []int{42}, ids)
}

func TestParseIDList_Invalid(t *testing.T) {
	_, err := ParseIDList("")
	assert.NotNil(t, err)

	_, err = ParseIDList("1^two^3")
	assert.NotNil(t, err)

	_, err = ParseIDList("1^^3")
	assert.NotNil(t, err)
}

func TestParseIDSet(t *testing.T) {
	set, err := ParseIDSet("5^7^5")
	assert.Nil(t, err)
	assert.Equal(t, map[int]bool{5: true, 7: true}, set)
}

func coverageRequest(t *testing.T, query url.Values) *http.Request {
	r, err := http.NewRequest("GET", "/coverage?"+query.Encode(), nil)
	assert.Nil(t, err)
	return r
}

func TestParseCoverageOptions(t *testing.T) {
	r := coverageRequest(t, url.Values{
		"visits": {"100^101"},
		"ccds":   {"1^3"},
		"ccdKey": {"sensor"},
	})

	opts, err := parseCoverageOptions(r)
	assert.Nil(t, err)
	assert.Equal(t, []int{100, 101}, opts.Visits)
	assert.Equal(t, map[int]bool{1: true, 3: true}, opts.CCDs)
	assert.Equal(t, "sensor", opts.CCDKey)
}

func TestParseCoverageOptions_Defaults(t *testing.T) {
	opts, err := parseCoverageOptions(coverageRequest(t, url.Values{"visits": {"100"}}))
	assert.Nil(t, err)
	assert.Equal(t, []int{100}, opts.Visits)
	assert.Nil(t, opts.CCDs)
	assert.Equal(t, "", opts.CCDKey)
}

func TestParseCoverageOptions_MissingVisits(t *testing.T) {
	_, err := parseCoverageOptions(coverageRequest(t, url.Values{}))
	assert.NotNil(t, err)
	herr, ok := err.(util.HTTPErr)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, herr.Status)
}

func TestParseCoverageOptions_BadCCDsStatus(t *testing.T) {
	r := coverageRequest(t, url.Values{"visits": {"100"}, "ccds": {"1^x"}})
	_, err := parseCoverageOptions(r)
	assert.NotNil(t, err)
	herr, ok := err.(util.HTTPErr)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, herr.Status)
	assert.Equal(t, http.StatusBadRequest, errStatus(err))
}
