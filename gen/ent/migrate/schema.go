// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ContractorsColumns holds the columns for the "contractors" table.
	ContractorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "abbreviation", Type: field.TypeString, Nullable: true},
		{Name: "type", Type: field.TypeString, Default: "sub"},
		{Name: "trade", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "active"},
		{Name: "sort_order", Type: field.TypeInt, Default: 0},
		{Name: "project_id", Type: field.TypeUUID},
	}
	// ContractorsTable holds the schema information for the "contractors" table.
	ContractorsTable = &schema.Table{
		Name:       "contractors",
		Columns:    ContractorsColumns,
		PrimaryKey: []*schema.Column{ContractorsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "contractors_projects_contractors",
				Columns:    []*schema.Column{ContractorsColumns[7]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ActiveReportsColumns holds the columns for the "active_reports" table.
	ActiveReportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "project_id", Type: field.TypeUUID},
		{Name: "report_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "device_id", Type: field.TypeString},
		{Name: "holder_name", Type: field.TypeString, Default: ""},
		{Name: "acquired_at", Type: field.TypeTime},
		{Name: "heartbeat_at", Type: field.TypeTime},
	}
	// ActiveReportsTable holds the schema information for the "active_reports" table.
	ActiveReportsTable = &schema.Table{
		Name:       "active_reports",
		Columns:    ActiveReportsColumns,
		PrimaryKey: []*schema.Column{ActiveReportsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "editlock_project_id_report_date",
				Unique:  true,
				Columns: []*schema.Column{ActiveReportsColumns[1], ActiveReportsColumns[2]},
			},
		},
	}
	// PhotosColumns holds the columns for the "photos" table.
	PhotosColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "local_photo_id", Type: field.TypeString},
		{Name: "caption", Type: field.TypeString, Nullable: true},
		{Name: "store_path", Type: field.TypeString, Nullable: true},
		{Name: "latitude", Type: field.TypeFloat64, Nullable: true},
		{Name: "longitude", Type: field.TypeFloat64, Nullable: true},
		{Name: "taken_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "report_id", Type: field.TypeUUID},
	}
	// PhotosTable holds the schema information for the "photos" table.
	PhotosTable = &schema.Table{
		Name:       "photos",
		Columns:    PhotosColumns,
		PrimaryKey: []*schema.Column{PhotosColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "photos_reports_photos",
				Columns:    []*schema.Column{PhotosColumns[8]},
				RefColumns: []*schema.Column{ReportsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "photo_report_id_local_photo_id",
				Unique:  true,
				Columns: []*schema.Column{PhotosColumns[8], PhotosColumns[1]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "active"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
	}
	// ReportsColumns holds the columns for the "reports" table.
	ReportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "report_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "status", Type: field.TypeString, Default: "draft"},
		{Name: "capture_mode", Type: field.TypeString, Default: "freeform"},
		{Name: "device_id", Type: field.TypeString},
		{Name: "original_input", Type: field.TypeJSON, Nullable: true},
		{Name: "ai_generated", Type: field.TypeJSON, Nullable: true},
		{Name: "user_edits", Type: field.TypeJSON, Nullable: true},
		{Name: "toggles", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_saved", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeUUID},
	}
	// ReportsTable holds the schema information for the "reports" table.
	ReportsTable = &schema.Table{
		Name:       "reports",
		Columns:    ReportsColumns,
		PrimaryKey: []*schema.Column{ReportsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "reports_projects_reports",
				Columns:    []*schema.Column{ReportsColumns[11]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "report_project_id_report_date",
				Unique:  true,
				Columns: []*schema.Column{ReportsColumns[11], ReportsColumns[1]},
			},
		},
	}
	// ReportEntriesColumns holds the columns for the "report_entries" table.
	ReportEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "local_entry_id", Type: field.TypeString},
		{Name: "section", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "contractor_id", Type: field.TypeUUID, Nullable: true},
		{Name: "contractor_name", Type: field.TypeString, Nullable: true},
		{Name: "captured_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "report_id", Type: field.TypeUUID},
	}
	// ReportEntriesTable holds the schema information for the "report_entries" table.
	ReportEntriesTable = &schema.Table{
		Name:       "report_entries",
		Columns:    ReportEntriesColumns,
		PrimaryKey: []*schema.Column{ReportEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "report_entries_reports_entries",
				Columns:    []*schema.Column{ReportEntriesColumns[9]},
				RefColumns: []*schema.Column{ReportsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "reportentry_report_id_local_entry_id",
				Unique:  true,
				Columns: []*schema.Column{ReportEntriesColumns[9], ReportEntriesColumns[1]},
			},
		},
	}
	// ReportRawCaptureColumns holds the columns for the "report_raw_capture" table.
	ReportRawCaptureColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "report_id", Type: field.TypeUUID},
		{Name: "capture_mode", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ReportRawCaptureTable holds the schema information for the "report_raw_capture" table.
	ReportRawCaptureTable = &schema.Table{
		Name:       "report_raw_capture",
		Columns:    ReportRawCaptureColumns,
		PrimaryKey: []*schema.Column{ReportRawCaptureColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reportrawcapture_report_id",
				Unique:  true,
				Columns: []*schema.Column{ReportRawCaptureColumns[1]},
			},
		},
	}
	// UserProfilesColumns holds the columns for the "user_profiles" table.
	UserProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "device_id", Type: field.TypeString, Unique: true},
		{Name: "display_name", Type: field.TypeString, Default: ""},
		{Name: "company", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UserProfilesTable holds the schema information for the "user_profiles" table.
	UserProfilesTable = &schema.Table{
		Name:       "user_profiles",
		Columns:    UserProfilesColumns,
		PrimaryKey: []*schema.Column{UserProfilesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ContractorsTable,
		ActiveReportsTable,
		PhotosTable,
		ProjectsTable,
		ReportsTable,
		ReportEntriesTable,
		ReportRawCaptureTable,
		UserProfilesTable,
	}
)

func init() {
	ContractorsTable.ForeignKeys[0].RefTable = ProjectsTable
	ContractorsTable.Annotation = &entsql.Annotation{
		Table: "contractors",
	}
	ActiveReportsTable.Annotation = &entsql.Annotation{
		Table: "active_reports",
	}
	PhotosTable.ForeignKeys[0].RefTable = ReportsTable
	PhotosTable.Annotation = &entsql.Annotation{
		Table: "photos",
	}
	ProjectsTable.Annotation = &entsql.Annotation{
		Table: "projects",
	}
	ReportsTable.ForeignKeys[0].RefTable = ProjectsTable
	ReportsTable.Annotation = &entsql.Annotation{
		Table: "reports",
	}
	ReportEntriesTable.ForeignKeys[0].RefTable = ReportsTable
	ReportEntriesTable.Annotation = &entsql.Annotation{
		Table: "report_entries",
	}
	ReportRawCaptureTable.Annotation = &entsql.Annotation{
		Table: "report_raw_capture",
	}
	UserProfilesTable.Annotation = &entsql.Annotation{
		Table: "user_profiles",
	}
}
