package migration

import (
	"database/sql"

	"github.com/pressly/goose"
)

func init() {
	goose.AddMigration(Up00002, Down00002)
}

//Up00002 adds the columns for the footprint corner points.
func Up00002(tx *sql.Tx) error {
	// This code is executed when the migration is applied.
	_, err := tx.Exec(`
		ALTER TABLE public.exposures ADD COLUMN IF NOT EXISTS corner_ll_ra double precision NOT NULL DEFAULT 0;
		ALTER TABLE public.exposures ADD COLUMN IF NOT EXISTS corner_ll_dec double precision NOT NULL DEFAULT 0;
		ALTER TABLE public.exposures ADD COLUMN IF NOT EXISTS corner_lr_ra double precision NOT NULL DEFAULT 0;
		ALTER TABLE public.exposures ADD COLUMN IF NOT EXISTS corner_lr_dec double precision NOT NULL DEFAULT 0;
		ALTER TABLE public.exposures ADD COLUMN IF NOT EXISTS corner_ur_ra double precision NOT NULL DEFAULT 0;
		ALTER TABLE public.exposures ADD COLUMN IF NOT EXISTS corner_ur_dec double precision NOT NULL DEFAULT 0;
		ALTER TABLE public.exposures ADD COLUMN IF NOT EXISTS corner_ul_ra double precision NOT NULL DEFAULT 0;
		ALTER TABLE public.exposures ADD COLUMN IF NOT EXISTS corner_ul_dec double precision NOT NULL DEFAULT 0;
		`)
	return err
}

//Down00002 removes the columns.
func Down00002(tx *sql.Tx) error {
	// This code is executed when the migration is rolled back.
	_, err := tx.Exec(`
		ALTER TABLE public.exposures DROP COLUMN IF EXISTS corner_ll_ra;
		ALTER TABLE public.exposures DROP COLUMN IF EXISTS corner_ll_dec;
		ALTER TABLE public.exposures DROP COLUMN IF EXISTS corner_lr_ra;
		ALTER TABLE public.exposures DROP COLUMN IF EXISTS corner_lr_dec;
		ALTER TABLE public.exposures DROP COLUMN IF EXISTS corner_ur_ra;
		ALTER TABLE public.exposures DROP COLUMN IF EXISTS corner_ur_dec;
		ALTER TABLE public.exposures DROP COLUMN IF EXISTS corner_ul_ra;
		ALTER TABLE public.exposures DROP COLUMN IF EXISTS corner_ul_dec;
		`)
	return err
}
