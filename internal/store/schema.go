package store

import (
	"context"

	"github.com/nacc-tools/disclosure-etl/internal/common"
)

// Schema shared by both backends. Booleans are stored as INTEGER 0/1 so the
// death-flag roll-up can use MAX on either backend.
var ddl = []string{
	`CREATE TABLE IF NOT EXISTS submitter_info (
		submitter_id INTEGER PRIMARY KEY,
		nacc_id INTEGER NOT NULL,
		doc_id TEXT NOT NULL,
		title TEXT, first_name TEXT, last_name TEXT,
		age INTEGER, marital_status TEXT,
		status_date INTEGER, status_month INTEGER, status_year INTEGER,
		sub_district TEXT, district TEXT, province TEXT, post_code TEXT,
		phone_number TEXT, mobile_number TEXT, email TEXT,
		latest_submitted_date TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS submitter_position (
		submitter_id INTEGER NOT NULL,
		nacc_id INTEGER NOT NULL,
		position_index INTEGER,
		position_period_type_id INTEGER,
		position TEXT,
		position_category_type_id INTEGER,
		workplace TEXT, workplace_location TEXT,
		start_date INTEGER, start_month INTEGER, start_year INTEGER,
		end_date INTEGER, end_month INTEGER, end_year INTEGER,
		note TEXT,
		latest_submitted_date TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS submitter_old_name (
		submitter_id INTEGER NOT NULL,
		nacc_id INTEGER NOT NULL,
		name_index INTEGER,
		title TEXT, first_name TEXT, last_name TEXT,
		title_en TEXT, first_name_en TEXT, last_name_en TEXT,
		latest_submitted_date TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS spouse_info (
		spouse_id INTEGER PRIMARY KEY,
		submitter_id INTEGER NOT NULL,
		nacc_id INTEGER NOT NULL,
		title TEXT, first_name TEXT, last_name TEXT,
		title_en TEXT, first_name_en TEXT, last_name_en TEXT,
		age INTEGER, status TEXT,
		status_date INTEGER, status_month INTEGER, status_year INTEGER,
		sub_district TEXT, district TEXT, province TEXT, post_code TEXT,
		phone_number TEXT, mobile_number TEXT, email TEXT,
		latest_submitted_date TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS spouse_position (
		spouse_id INTEGER NOT NULL,
		nacc_id INTEGER NOT NULL,
		position_index INTEGER,
		position_period_type_id INTEGER,
		position TEXT,
		position_category_type_id INTEGER,
		workplace TEXT, workplace_location TEXT,
		start_date INTEGER, start_month INTEGER, start_year INTEGER,
		end_date INTEGER, end_month INTEGER, end_year INTEGER,
		note TEXT,
		latest_submitted_date TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS spouse_old_name (
		spouse_id INTEGER NOT NULL,
		nacc_id INTEGER NOT NULL,
		name_index INTEGER,
		title TEXT, first_name TEXT, last_name TEXT,
		title_en TEXT, first_name_en TEXT, last_name_en TEXT,
		latest_submitted_date TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS relative_info (
		relative_id INTEGER PRIMARY KEY,
		submitter_id INTEGER NOT NULL,
		nacc_id INTEGER NOT NULL,
		relative_index INTEGER,
		relationship_id INTEGER,
		title TEXT, first_name TEXT, last_name TEXT,
		age INTEGER, address TEXT, occupation TEXT,
		school TEXT, workplace TEXT, workplace_location TEXT,
		latest_submitted_date TEXT NOT NULL,
		is_death INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS statement (
		nacc_id INTEGER NOT NULL,
		statement_type_id INTEGER,
		valuation_submitter REAL,
		submitter_id INTEGER NOT NULL,
		valuation_spouse REAL,
		valuation_child REAL,
		latest_submitted_date TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS statement_detail (
		nacc_id INTEGER NOT NULL,
		submitter_id INTEGER NOT NULL,
		statement_detail_type_id INTEGER,
		detail_index INTEGER,
		detail TEXT,
		valuation_submitter REAL,
		valuation_spouse REAL,
		valuation_child REAL,
		note TEXT,
		latest_submitted_date TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS asset (
		asset_id INTEGER PRIMARY KEY,
		submitter_id INTEGER NOT NULL,
		nacc_id INTEGER NOT NULL,
		asset_index INTEGER,
		asset_type_id INTEGER NOT NULL,
		asset_type_other TEXT,
		asset_name TEXT,
		date_acquiring_type_id INTEGER,
		acquiring_date INTEGER, acquiring_month INTEGER, acquiring_year INTEGER,
		date_ending_type_id INTEGER,
		ending_date INTEGER, ending_month INTEGER, ending_year INTEGER,
		asset_acquisition_type_id INTEGER,
		valuation REAL,
		owner_by_submitter INTEGER NOT NULL DEFAULT 0,
		owner_by_spouse INTEGER NOT NULL DEFAULT 0,
		owner_by_child INTEGER NOT NULL DEFAULT 0,
		latest_submitted_date TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS asset_land_info (
		asset_id INTEGER PRIMARY KEY,
		nacc_id INTEGER NOT NULL,
		land_type TEXT, land_number TEXT,
		area_rai TEXT, area_ngan TEXT, area_sqwa TEXT,
		province TEXT,
		latest_submitted_date TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS asset_building_info (
		asset_id INTEGER PRIMARY KEY,
		nacc_id INTEGER NOT NULL,
		building_type TEXT, building_name TEXT, room_number TEXT,
		province TEXT,
		latest_submitted_date TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS asset_vehicle_info (
		asset_id INTEGER PRIMARY KEY,
		nacc_id INTEGER NOT NULL,
		vehicle_type TEXT, brand TEXT, model TEXT, registration TEXT,
		province TEXT,
		latest_submitted_date TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS asset_other_asset_info (
		asset_id INTEGER PRIMARY KEY,
		nacc_id INTEGER NOT NULL,
		description TEXT,
		latest_submitted_date TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS summary (
		nacc_id INTEGER NOT NULL,
		doc_id TEXT NOT NULL,
		nd_title TEXT NOT NULL,
		nd_first_name TEXT NOT NULL,
		nd_last_name TEXT NOT NULL,
		nd_position TEXT NOT NULL,
		nd_submitted_date TEXT NOT NULL,
		submitter_id INTEGER NOT NULL,
		spouse_title TEXT, spouse_first_name TEXT, spouse_last_name TEXT,
		spouse_age INTEGER,
		statement_valuation_submitter_total REAL NOT NULL,
		statement_valuation_spouse_total REAL NOT NULL,
		statement_valuation_child_total REAL NOT NULL,
		asset_count INTEGER NOT NULL,
		relative_count INTEGER NOT NULL,
		extraction_status TEXT NOT NULL,
		confidence_score REAL NOT NULL,
		latest_submitted_date TEXT NOT NULL
	)`,
}

// Migrate creates the schema if absent.
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range ddl {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return common.WrapError(err, "migrate schema")
		}
	}
	s.logger.Info("store.migrate.ok", "tables", len(ddl))
	return nil
}
