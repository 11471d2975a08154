package migration

import (
	"database/sql"

	"github.com/pressly/goose"
)

func init() {
	goose.AddMigration(Up00001, Down00001)
}

//Up00001 creates the exposures table.
func Up00001(tx *sql.Tx) error {
	// This code is executed when the migration is applied.
	_, err := tx.Exec(`
		CREATE TABLE public.exposures
		(
			visit integer NOT NULL,
			ccd integer NOT NULL,
			ccd_key text COLLATE pg_catalog."default" NOT NULL DEFAULT 'ccd',
			filter text COLLATE pg_catalog."default" NOT NULL DEFAULT '',
			obs_date timestamp without time zone,
			exp_time real NOT NULL DEFAULT 0,
			CONSTRAINT "exposures_pk_visit_ccd" PRIMARY KEY (visit, ccd)
		)
		WITH (
			OIDS = FALSE
		);

		CREATE INDEX idx_exposures_visit
		ON public.exposures (visit);
		`)
	return err
}

//Down00001 undoes the db changes.
func Down00001(tx *sql.Tx) error {
	// This code is executed when the migration is rolled back.
	_, err := tx.Exec(`
		DROP TABLE IF EXISTS public.exposures;
		`)
	return err
}
