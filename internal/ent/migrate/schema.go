// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BundlesColumns holds the columns for the "bundles" table.
	BundlesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "summary_json", Type: field.TypeJSON},
		{Name: "timezone", Type: field.TypeString},
		{Name: "bundle_category_id", Type: field.TypeUUID},
	}
	// BundlesTable holds the schema information for the "bundles" table.
	BundlesTable = &schema.Table{
		Name:       "bundles",
		Columns:    BundlesColumns,
		PrimaryKey: []*schema.Column{BundlesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "bundles_bundle_categories_bundle_category",
				Columns:    []*schema.Column{BundlesColumns[5]},
				RefColumns: []*schema.Column{BundleCategoriesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "bundle_bundle_category_id_timezone",
				Unique:  false,
				Columns: []*schema.Column{BundlesColumns[5], BundlesColumns[4]},
			},
		},
	}
	// BundleCategoriesColumns holds the columns for the "bundle_categories" table.
	BundleCategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "summary_required", Type: field.TypeBool, Default: false},
	}
	// BundleCategoriesTable holds the schema information for the "bundle_categories" table.
	BundleCategoriesTable = &schema.Table{
		Name:       "bundle_categories",
		Columns:    BundleCategoriesColumns,
		PrimaryKey: []*schema.Column{BundleCategoriesColumns[0]},
	}
	// DailyDosesColumns holds the columns for the "daily_doses" table.
	DailyDosesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "quote", Type: field.TypeString, Size: 2147483647},
		{Name: "source", Type: field.TypeString},
		{Name: "dd_type", Type: field.TypeString},
	}
	// DailyDosesTable holds the schema information for the "daily_doses" table.
	DailyDosesTable = &schema.Table{
		Name:       "daily_doses",
		Columns:    DailyDosesColumns,
		PrimaryKey: []*schema.Column{DailyDosesColumns[0]},
	}
	// DigestRunsColumns holds the columns for the "digest_runs" table.
	DigestRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "select_from", Type: field.TypeTime},
		{Name: "run_date", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"in_progress", "completed", "failed"}, Default: "in_progress"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// DigestRunsTable holds the schema information for the "digest_runs" table.
	DigestRunsTable = &schema.Table{
		Name:       "digest_runs",
		Columns:    DigestRunsColumns,
		PrimaryKey: []*schema.Column{DigestRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "digestrun_select_from_run_date",
				Unique:  true,
				Columns: []*schema.Column{DigestRunsColumns[3], DigestRunsColumns[4]},
			},
			{
				Name:    "digestrun_status",
				Unique:  false,
				Columns: []*schema.Column{DigestRunsColumns[5]},
			},
		},
	}
	// DigestTasksColumns holds the columns for the "digest_tasks" table.
	DigestTasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "bundle_category_id", Type: field.TypeUUID},
		{Name: "select_from", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed"}, Default: "pending"},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// DigestTasksTable holds the schema information for the "digest_tasks" table.
	DigestTasksTable = &schema.Table{
		Name:       "digest_tasks",
		Columns:    DigestTasksColumns,
		PrimaryKey: []*schema.Column{DigestTasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "digesttask_bundle_category_id_select_from",
				Unique:  true,
				Columns: []*schema.Column{DigestTasksColumns[3], DigestTasksColumns[4]},
			},
			{
				Name:    "digesttask_status",
				Unique:  false,
				Columns: []*schema.Column{DigestTasksColumns[5]},
			},
		},
	}
	// KnowledgeObjectsColumns holds the columns for the "knowledge_objects" table.
	KnowledgeObjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "ko_type", Type: field.TypeEnum, Enums: []string{"episode", "article", "email"}},
		{Name: "title", Type: field.TypeString},
		{Name: "deleted", Type: field.TypeBool, Default: false},
		{Name: "knowledge_object_children", Type: field.TypeUUID, Nullable: true},
	}
	// KnowledgeObjectsTable holds the schema information for the "knowledge_objects" table.
	KnowledgeObjectsTable = &schema.Table{
		Name:       "knowledge_objects",
		Columns:    KnowledgeObjectsColumns,
		PrimaryKey: []*schema.Column{KnowledgeObjectsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "knowledge_objects_knowledge_objects_children",
				Columns:    []*schema.Column{KnowledgeObjectsColumns[6]},
				RefColumns: []*schema.Column{KnowledgeObjectsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "knowledgeobject_deleted",
				Unique:  false,
				Columns: []*schema.Column{KnowledgeObjectsColumns[5]},
			},
		},
	}
	// KoSummariesColumns holds the columns for the "ko_summaries" table.
	KoSummariesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "ko_type", Type: field.TypeEnum, Enums: []string{"episode", "article", "email"}},
		{Name: "title", Type: field.TypeString},
		{Name: "summary_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "summary_one_liner", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "ko_id", Type: field.TypeUUID, Unique: true},
	}
	// KoSummariesTable holds the schema information for the "ko_summaries" table.
	KoSummariesTable = &schema.Table{
		Name:       "ko_summaries",
		Columns:    KoSummariesColumns,
		PrimaryKey: []*schema.Column{KoSummariesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "ko_summaries_knowledge_objects_summary",
				Columns:    []*schema.Column{KoSummariesColumns[7]},
				RefColumns: []*schema.Column{KnowledgeObjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// BundleKnowledgeObjectsColumns holds the columns for the "bundle_knowledge_objects" table.
	BundleKnowledgeObjectsColumns = []*schema.Column{
		{Name: "bundle_id", Type: field.TypeUUID},
		{Name: "knowledge_object_id", Type: field.TypeUUID},
	}
	// BundleKnowledgeObjectsTable holds the schema information for the "bundle_knowledge_objects" table.
	BundleKnowledgeObjectsTable = &schema.Table{
		Name:       "bundle_knowledge_objects",
		Columns:    BundleKnowledgeObjectsColumns,
		PrimaryKey: []*schema.Column{BundleKnowledgeObjectsColumns[0], BundleKnowledgeObjectsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "bundle_knowledge_objects_bundle_id",
				Columns:    []*schema.Column{BundleKnowledgeObjectsColumns[0]},
				RefColumns: []*schema.Column{BundlesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "bundle_knowledge_objects_knowledge_object_id",
				Columns:    []*schema.Column{BundleKnowledgeObjectsColumns[1]},
				RefColumns: []*schema.Column{KnowledgeObjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// KnowledgeObjectBundleCategoriesColumns holds the columns for the "knowledge_object_bundle_categories" table.
	KnowledgeObjectBundleCategoriesColumns = []*schema.Column{
		{Name: "knowledge_object_id", Type: field.TypeUUID},
		{Name: "bundle_category_id", Type: field.TypeUUID},
	}
	// KnowledgeObjectBundleCategoriesTable holds the schema information for the "knowledge_object_bundle_categories" table.
	KnowledgeObjectBundleCategoriesTable = &schema.Table{
		Name:       "knowledge_object_bundle_categories",
		Columns:    KnowledgeObjectBundleCategoriesColumns,
		PrimaryKey: []*schema.Column{KnowledgeObjectBundleCategoriesColumns[0], KnowledgeObjectBundleCategoriesColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "knowledge_object_bundle_categories_knowledge_object_id",
				Columns:    []*schema.Column{KnowledgeObjectBundleCategoriesColumns[0]},
				RefColumns: []*schema.Column{KnowledgeObjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "knowledge_object_bundle_categories_bundle_category_id",
				Columns:    []*schema.Column{KnowledgeObjectBundleCategoriesColumns[1]},
				RefColumns: []*schema.Column{BundleCategoriesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BundlesTable,
		BundleCategoriesTable,
		DailyDosesTable,
		DigestRunsTable,
		DigestTasksTable,
		KnowledgeObjectsTable,
		KoSummariesTable,
		BundleKnowledgeObjectsTable,
		KnowledgeObjectBundleCategoriesTable,
	}
)

func init() {
	BundlesTable.ForeignKeys[0].RefTable = BundleCategoriesTable
	KnowledgeObjectsTable.ForeignKeys[0].RefTable = KnowledgeObjectsTable
	KoSummariesTable.ForeignKeys[0].RefTable = KnowledgeObjectsTable
	BundleKnowledgeObjectsTable.ForeignKeys[0].RefTable = BundlesTable
	BundleKnowledgeObjectsTable.ForeignKeys[1].RefTable = KnowledgeObjectsTable
	KnowledgeObjectBundleCategoriesTable.ForeignKeys[0].RefTable = KnowledgeObjectsTable
	KnowledgeObjectBundleCategoriesTable.ForeignKeys[1].RefTable = BundleCategoriesTable
}
