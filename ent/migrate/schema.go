// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// APIKeysColumns holds the columns for the "api_keys" table.
	APIKeysColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "org_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "key_hash", Type: field.TypeString, Unique: true},
		{Name: "prefix", Type: field.TypeString},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// APIKeysTable holds the schema information for the "api_keys" table.
	APIKeysTable = &schema.Table{
		Name:       "api_keys",
		Columns:    APIKeysColumns,
		PrimaryKey: []*schema.Column{APIKeysColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "apikey_org_id",
				Unique:  false,
				Columns: []*schema.Column{APIKeysColumns[1]},
			},
		},
	}
	// ExecutionsColumns holds the columns for the "executions" table.
	ExecutionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "task_id", Type: field.TypeString},
		{Name: "org_id", Type: field.TypeString},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"agnox-hosted", "external-ci"}, Default: "agnox-hosted"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PENDING", "RUNNING", "PASSED", "FAILED", "ERROR", "UNSTABLE", "ANALYZING"}, Default: "PENDING"},
		{Name: "image", Type: field.TypeString},
		{Name: "command", Type: field.TypeString, Nullable: true},
		{Name: "folder", Type: field.TypeString, Nullable: true},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime, Nullable: true},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "tests", Type: field.TypeJSON, Nullable: true},
		{Name: "output", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "trigger", Type: field.TypeEnum, Enums: []string{"manual", "cron", "github", "gitlab", "jenkins", "webhook"}, Default: "manual"},
		{Name: "group_name", Type: field.TypeString, Nullable: true},
		{Name: "batch_id", Type: field.TypeString, Nullable: true},
		{Name: "cycle_id", Type: field.TypeString, Nullable: true},
		{Name: "cycle_item_id", Type: field.TypeString, Nullable: true},
		{Name: "ingest_meta", Type: field.TypeJSON, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ExecutionsTable holds the schema information for the "executions" table.
	ExecutionsTable = &schema.Table{
		Name:       "executions",
		Columns:    ExecutionsColumns,
		PrimaryKey: []*schema.Column{ExecutionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "execution_task_id_org_id",
				Unique:  true,
				Columns: []*schema.Column{ExecutionsColumns[1], ExecutionsColumns[2]},
			},
			{
				Name:    "execution_org_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[2], ExecutionsColumns[8]},
			},
			{
				Name:    "execution_org_id_status",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[2], ExecutionsColumns[4]},
			},
		},
	}
	// IngestArchivesColumns holds the columns for the "ingest_archives" table.
	IngestArchivesColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "org_id", Type: field.TypeString},
		{Name: "project_id", Type: field.TypeString},
		{Name: "task_id", Type: field.TypeString},
		{Name: "cycle_id", Type: field.TypeString},
		{Name: "cycle_item_id", Type: field.TypeString},
		{Name: "framework", Type: field.TypeString},
		{Name: "reporter_version", Type: field.TypeString},
		{Name: "total_tests", Type: field.TypeInt},
		{Name: "status", Type: field.TypeString},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
	}
	// IngestArchivesTable holds the schema information for the "ingest_archives" table.
	IngestArchivesTable = &schema.Table{
		Name:       "ingest_archives",
		Columns:    IngestArchivesColumns,
		PrimaryKey: []*schema.Column{IngestArchivesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ingestarchive_expires_at",
				Unique:  false,
				Columns: []*schema.Column{IngestArchivesColumns[12]},
			},
			{
				Name:    "ingestarchive_org_id",
				Unique:  false,
				Columns: []*schema.Column{IngestArchivesColumns[1]},
			},
		},
	}
	// OrganizationsColumns holds the columns for the "organizations" table.
	OrganizationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "plan", Type: field.TypeEnum, Enums: []string{"free", "team", "enterprise"}, Default: "free"},
		{Name: "limits", Type: field.TypeJSON},
		{Name: "features", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// OrganizationsTable holds the schema information for the "organizations" table.
	OrganizationsTable = &schema.Table{
		Name:       "organizations",
		Columns:    OrganizationsColumns,
		PrimaryKey: []*schema.Column{OrganizationsColumns[0]},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "org_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "slug", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "project_org_id_slug",
				Unique:  true,
				Columns: []*schema.Column{ProjectsColumns[1], ProjectsColumns[3]},
			},
		},
	}
	// ProjectEnvVarsColumns holds the columns for the "project_env_vars" table.
	ProjectEnvVarsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "org_id", Type: field.TypeString},
		{Name: "project_id", Type: field.TypeString},
		{Name: "key", Type: field.TypeString},
		{Name: "value", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "encrypted", Type: field.TypeJSON, Nullable: true},
		{Name: "is_secret", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectEnvVarsTable holds the schema information for the "project_env_vars" table.
	ProjectEnvVarsTable = &schema.Table{
		Name:       "project_env_vars",
		Columns:    ProjectEnvVarsColumns,
		PrimaryKey: []*schema.Column{ProjectEnvVarsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "projectenvvar_org_id_project_id_key",
				Unique:  true,
				Columns: []*schema.Column{ProjectEnvVarsColumns[1], ProjectEnvVarsColumns[2], ProjectEnvVarsColumns[3]},
			},
		},
	}
	// SchedulesColumns holds the columns for the "schedules" table.
	SchedulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "org_id", Type: field.TypeString},
		{Name: "project_id", Type: field.TypeString, Nullable: true},
		{Name: "name", Type: field.TypeString},
		{Name: "cron_expression", Type: field.TypeString},
		{Name: "environment", Type: field.TypeString},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "image", Type: field.TypeString},
		{Name: "folder", Type: field.TypeString, Nullable: true},
		{Name: "base_url", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SchedulesTable holds the schema information for the "schedules" table.
	SchedulesTable = &schema.Table{
		Name:       "schedules",
		Columns:    SchedulesColumns,
		PrimaryKey: []*schema.Column{SchedulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "schedule_org_id",
				Unique:  false,
				Columns: []*schema.Column{SchedulesColumns[1]},
			},
			{
				Name:    "schedule_is_active",
				Unique:  false,
				Columns: []*schema.Column{SchedulesColumns[6]},
			},
		},
	}
	// TestCyclesColumns holds the columns for the "test_cycles" table.
	TestCyclesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "org_id", Type: field.TypeString},
		{Name: "project_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PENDING", "RUNNING", "COMPLETED"}, Default: "PENDING"},
		{Name: "items", Type: field.TypeJSON, Nullable: true},
		{Name: "summary", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TestCyclesTable holds the schema information for the "test_cycles" table.
	TestCyclesTable = &schema.Table{
		Name:       "test_cycles",
		Columns:    TestCyclesColumns,
		PrimaryKey: []*schema.Column{TestCyclesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "testcycle_org_id_project_id",
				Unique:  false,
				Columns: []*schema.Column{TestCyclesColumns[1], TestCyclesColumns[2]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "org_id", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "hashed_password", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "developer", "viewer"}, Default: "developer"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "invited", "disabled"}, Default: "active"},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_org_id",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		APIKeysTable,
		ExecutionsTable,
		IngestArchivesTable,
		OrganizationsTable,
		ProjectsTable,
		ProjectEnvVarsTable,
		SchedulesTable,
		TestCyclesTable,
		UsersTable,
	}
)

func init() {
	APIKeysTable.Annotation = &entsql.Annotation{
		Table: "api_keys",
	}
	ExecutionsTable.Annotation = &entsql.Annotation{
		Table: "executions",
	}
	IngestArchivesTable.Annotation = &entsql.Annotation{
		Table: "ingest_archives",
	}
	OrganizationsTable.Annotation = &entsql.Annotation{
		Table: "organizations",
	}
	ProjectsTable.Annotation = &entsql.Annotation{
		Table: "projects",
	}
	ProjectEnvVarsTable.Annotation = &entsql.Annotation{
		Table: "project_env_vars",
	}
	SchedulesTable.Annotation = &entsql.Annotation{
		Table: "schedules",
	}
	TestCyclesTable.Annotation = &entsql.Annotation{
		Table: "test_cycles",
	}
	UsersTable.Annotation = &entsql.Annotation{
		Table: "users",
	}
}
