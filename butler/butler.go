// Package butler provides read access to a data repository: per-exposure
// metadata, the camera description, and the sky map, all addressed by
// dataset name plus data ID.
//
// A repository is a directory tree:
//
//	<root>/camera.json
//	<root>/skymap.json
//	<root>/calexp_md/<visit>/<ccdKey><ccd>.json
package butler

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/jonathansick-shadow/skymap/camera"
	"github.com/jonathansick-shadow/skymap/model"
	"github.com/jonathansick-shadow/skymap/skymap"
	"github.com/jonathansick-shadow/skymap/util"
)

// Butler is a handle on one repository root
type Butler struct {
	root      string
	sessionID string
}

// AppName returns the tool name for log messages
func (b *Butler) AppName() string {
	return "skymap"
}

// SessionID returns a Session ID, creating one if needed
func (b *Butler) SessionID() string {
	if b.sessionID == "" {
		b.sessionID, _ = util.PsuUUID()
	}
	return b.sessionID
}

// LogRootDir returns the repository root
func (b *Butler) LogRootDir() string {
	return b.root
}

// Open opens a repository root
func Open(root string) (*Butler, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("Could not open repository root: %v", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("Repository root %s is not a directory", root)
	}
	return &Butler{root: root}, nil
}

// Root returns the repository root path
func (b *Butler) Root() string {
	return b.root
}

// Get retrieves a dataset instance by name and data ID
func (b *Butler) Get(dataset string, dataID model.DataID) (interface{}, error) {
	switch dataset {
	case model.CalexpMetadataDataset:
		return b.GetMetadata(dataset, dataID)
	case model.DeepCoaddSkyMapDataset:
		return b.SkyMap()
	}
	return nil, fmt.Errorf("Unknown dataset: %s", dataset)
}

// GetMetadata retrieves metadata cards for one (visit, ccd) pair. The data
// ID must contain a "visit" entry plus exactly one other entry naming the
// detector, e.g. {"visit": 100, "ccd": 3}.
func (b *Butler) GetMetadata(dataset string, dataID model.DataID) (model.Metadata, error) {
	path, err := b.metadataPath(dataset, dataID)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		rdErr := util.Error{LogMsg: fmt.Sprintf("Failed to read metadata at %s: %v", path, err),
			SimpleMsg: fmt.Sprintf("No metadata for data ID %v", dataID)}
		return nil, rdErr.Log(b, "GetMetadata")
	}
	md, err := model.ParseMetadata(data)
	if err != nil {
		mdErr := util.Error{LogMsg: fmt.Sprintf("Malformed metadata at %s: %v", path, err),
			SimpleMsg: fmt.Sprintf("Malformed metadata for data ID %v", dataID)}
		return nil, mdErr.Log(b, "GetMetadata")
	}
	return md, nil
}

func (b *Butler) metadataPath(dataset string, dataID model.DataID) (string, error) {
	visit, ok := dataID["visit"]
	if !ok {
		return "", fmt.Errorf("Data ID %v has no visit entry", dataID)
	}
	ccdKey := ""
	for key := range dataID {
		if key == "visit" {
			continue
		}
		if ccdKey != "" {
			return "", fmt.Errorf("Data ID %v is ambiguous: more than one detector entry", dataID)
		}
		ccdKey = key
	}
	if ccdKey == "" {
		return "", fmt.Errorf("Data ID %v has no detector entry", dataID)
	}
	name := fmt.Sprintf("%s%d.json", ccdKey, dataID[ccdKey])
	return filepath.Join(b.root, dataset, strconv.Itoa(visit), name), nil
}

// Camera loads the repository's camera description
func (b *Butler) Camera() (*camera.Camera, error) {
	return camera.Load(filepath.Join(b.root, util.GetCameraFileName()))
}

// SkyMap loads the repository's sky map. The whole map is returned; data
// IDs carry no tract selector.
func (b *Butler) SkyMap() (*skymap.SkyMap, error) {
	return skymap.Load(filepath.Join(b.root, util.GetSkyMapFileName()))
}

// Visits lists the visits with metadata present for the given dataset,
// in increasing order
func (b *Butler) Visits(dataset string) ([]int, error) {
	entries, err := os.ReadDir(filepath.Join(b.root, dataset))
	if err != nil {
		return nil, err
	}
	visits := []int{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		visit, err := strconv.Atoi(entry.Name())
		if err != nil {
			continue
		}
		visits = append(visits, visit)
	}
	sort.Ints(visits)
	return visits, nil
}
