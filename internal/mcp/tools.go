package mcp

import "github.com/mark3labs/mcp-go/mcp"

var caseListToolDef = mcp.NewTool(
	"case_list",
	mcp.WithDescription("List every case with its tags and owned hearings."),
)

var eventListToolDef = mcp.NewTool(
	"event_list",
	mcp.WithDescription("List the flattened hearing events derived from the cases."),
)

var hearingAddToolDef = mcp.NewTool(
	"hearing_add",
	mcp.WithDescription("Schedule a new hearing on a case. The new hearing is assigned a fresh id."),
	mcp.WithString("case_id",
		mcp.Required(),
		mcp.Description("Id of the case that owns the hearing."),
	),
	mcp.WithString("title",
		mcp.Required(),
		mcp.Description("Hearing title, without the case number prefix."),
	),
	mcp.WithString("date",
		mcp.Required(),
		mcp.Description("Calendar day of the hearing, YYYY-MM-DD."),
	),
	mcp.WithString("start_time",
		mcp.Required(),
		mcp.Description("Start time, zero-padded HH:MM (24-hour)."),
	),
	mcp.WithString("end_time",
		mcp.Description("Optional end time, HH:MM."),
	),
	mcp.WithString("notes",
		mcp.Description("Free-text notes."),
	),
	mcp.WithString("status",
		mcp.Description("Hearing status; defaults to new."),
		mcp.Enum("new", "rescheduled", "cancelled"),
	),
)

var hearingUpdateToolDef = mcp.NewTool(
	"hearing_update",
	mcp.WithDescription("Replace all fields of an existing hearing, keeping its id and position."),
	mcp.WithString("case_id",
		mcp.Required(),
		mcp.Description("Id of the case that owns the hearing."),
	),
	mcp.WithString("hearing_id",
		mcp.Required(),
		mcp.Description("Id of the hearing to update."),
	),
	mcp.WithString("title",
		mcp.Required(),
		mcp.Description("New hearing title."),
	),
	mcp.WithString("date",
		mcp.Required(),
		mcp.Description("New calendar day, YYYY-MM-DD."),
	),
	mcp.WithString("start_time",
		mcp.Required(),
		mcp.Description("New start time, HH:MM."),
	),
	mcp.WithString("end_time",
		mcp.Description("Optional end time, HH:MM."),
	),
	mcp.WithString("notes",
		mcp.Description("Free-text notes."),
	),
	mcp.WithString("status",
		mcp.Description("Hearing status; defaults to new."),
		mcp.Enum("new", "rescheduled", "cancelled"),
	),
)

var hearingDeleteToolDef = mcp.NewTool(
	"hearing_delete",
	mcp.WithDescription("Delete a hearing by id from whichever case owns it."),
	mcp.WithString("hearing_id",
		mcp.Required(),
		mcp.Description("Id of the hearing to delete."),
	),
)

var tagAddToolDef = mcp.NewTool(
	"tag_add",
	mcp.WithDescription("Add a tag to a case. Duplicates and empty tags are accepted no-ops."),
	mcp.WithString("case_id",
		mcp.Required(),
		mcp.Description("Id of the case to tag."),
	),
	mcp.WithString("tag",
		mcp.Required(),
		mcp.Description("Tag text; trimmed before use."),
	),
)

var tagRemoveToolDef = mcp.NewTool(
	"tag_remove",
	mcp.WithDescription("Remove a tag from a case. Removing an absent tag is an accepted no-op."),
	mcp.WithString("case_id",
		mcp.Required(),
		mcp.Description("Id of the case."),
	),
	mcp.WithString("tag",
		mcp.Required(),
		mcp.Description("Tag text to remove (exact match)."),
	),
)

var weekToolDef = mcp.NewTool(
	"docket_week",
	mcp.WithDescription("Compute the Monday–Friday schedule for the week containing a reference date, with morning and afternoon buckets per day."),
	mcp.WithString("date",
		mcp.Description("Reference date, YYYY-MM-DD; defaults to today."),
	),
)

var queryToolDef = mcp.NewTool(
	"docket_query",
	mcp.WithDescription("Search, filter, sort and group hearings by case for the list view."),
	mcp.WithString("search",
		mcp.Description("Case-insensitive substring matched against case titles, descriptions, numbers, tags, and hearing titles and notes."),
	),
	mcp.WithString("status",
		mcp.Description("Status filter; defaults to all."),
		mcp.Enum("all", "new", "rescheduled", "cancelled"),
	),
	mcp.WithString("sort",
		mcp.Description("Sort key; defaults to date."),
		mcp.Enum("date", "case", "title"),
	),
)

var exportToolDef = mcp.NewTool(
	"docket_export",
	mcp.WithDescription("Export the full hearing schedule as an iCalendar (.ics) file."),
	mcp.WithString("path",
		mcp.Required(),
		mcp.Description("Destination file path; must end in .ics."),
	),
)
