package database

// Column describes one column of a table as produced by the migrations
type Column struct {
	Name    string
	Type    string
	NotNull bool
}

// ForeignKey describes a column referencing another table
type ForeignKey struct {
	Column    string
	RefTable  string
	RefColumn string
}

// Table describes a table's columns in declaration order, its primary key
// and its foreign keys
type Table struct {
	Name        string
	PrimaryKey  string
	Columns     []Column
	ForeignKeys []ForeignKey
}

// Table names
const (
	StationTable     = "station"
	SameDayTaskTable = "same_day_route_task"
	LMCPTaskTable    = "lmcp_task"
)

var stationRef = ForeignKey{Column: "station_code", RefTable: StationTable, RefColumn: "station_code"}

// Tables is the schema the migrations produce at the latest version.
// It must be kept in sync with migrations/; schema_test.go compares the two.
var Tables = []Table{
	{
		Name:       StationTable,
		PrimaryKey: "station_code",
		Columns: []Column{
			{Name: "station_code", Type: "TEXT", NotNull: true},
		},
	},
	{
		Name:       SameDayTaskTable,
		PrimaryKey: "id",
		Columns: []Column{
			{Name: "id", Type: "INTEGER", NotNull: true},
			{Name: "station_code", Type: "TEXT", NotNull: true},
			{Name: "start_time", Type: "TEXT", NotNull: true},
			{Name: "tba_submitted_count", Type: "INTEGER"},
			{Name: "dpo_complete_time", Type: "TEXT", NotNull: true},
			{Name: "end_time", Type: "TEXT", NotNull: true},
			{Name: "same_day_type", Type: "TEXT", NotNull: true},
			{Name: "buffer_percent", Type: "INTEGER", NotNull: true},
			{Name: "dpo_link", Type: "TEXT", NotNull: true},
			{Name: "tba_routed_count", Type: "INTEGER", NotNull: true},
			{Name: "route_count", Type: "INTEGER", NotNull: true},
		},
		ForeignKeys: []ForeignKey{stationRef},
	},
	{
		Name:       LMCPTaskTable,
		PrimaryKey: "id",
		Columns: []Column{
			{Name: "id", Type: "INTEGER", NotNull: true},
			{Name: "station_code", Type: "TEXT", NotNull: true},
			{Name: "ofd_date", Type: "TEXT", NotNull: true},
			{Name: "ead", Type: "TEXT", NotNull: true},
			{Name: "current_lmcp", Type: "INTEGER", NotNull: true},
			{Name: "current_atrops", Type: "INTEGER", NotNull: true},
			{Name: "pdr", Type: "INTEGER", NotNull: true},
			{Name: "requested", Type: "INTEGER", NotNull: true},
			{Name: "sim_link", Type: "TEXT", NotNull: true},
			{Name: "value", Type: "INTEGER", NotNull: true},
			{Name: "start_time", Type: "TEXT"},
			{Name: "export_time", Type: "TEXT"},
			{Name: "end_time", Type: "TEXT"},
			{Name: "source", Type: "TEXT", NotNull: true},
			{Name: "namespace", Type: "TEXT", NotNull: true},
			{Name: "type", Type: "TEXT", NotNull: true},
			{Name: "wave_group_name", Type: "TEXT", NotNull: true},
			{Name: "ship_option_category", Type: "TEXT", NotNull: true},
			{Name: "address_type", Type: "TEXT", NotNull: true},
			{Name: "package_type", Type: "TEXT", NotNull: true},
			{Name: "cluster", Type: "TEXT", NotNull: true},
			{Name: "fulfillment_network_type", Type: "TEXT", NotNull: true},
			{Name: "volume_type", Type: "TEXT", NotNull: true},
			{Name: "week", Type: "INTEGER", NotNull: true},
			{Name: "f", Type: "TEXT", NotNull: true},
		},
		ForeignKeys: []ForeignKey{stationRef},
	},
}

// TableByName looks up a table definition
func TableByName(name string) (Table, bool) {
	for _, t := range Tables {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}
