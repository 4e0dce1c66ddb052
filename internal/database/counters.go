package database

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// WriteCounters is the fixed-shape summary of how many entities, labels,
// indexes, and constraints a write statement created or removed. Every field
// is populated, zero when the query caused no mutation of that kind.
type WriteCounters struct {
	NodesCreated         int `json:"nodes_created"`
	NodesDeleted         int `json:"nodes_deleted"`
	RelationshipsCreated int `json:"relationships_created"`
	RelationshipsDeleted int `json:"relationships_deleted"`
	PropertiesSet        int `json:"properties_set"`
	LabelsAdded          int `json:"labels_added"`
	LabelsRemoved        int `json:"labels_removed"`
	IndexesAdded         int `json:"indexes_added"`
	IndexesRemoved       int `json:"indexes_removed"`
	ConstraintsAdded     int `json:"constraints_added"`
	ConstraintsRemoved   int `json:"constraints_removed"`
}

// CountersFromSummary extracts the mutation counters from an execution
// summary.
func CountersFromSummary(summary neo4j.ResultSummary) *WriteCounters {
	counters := summary.Counters()
	return &WriteCounters{
		NodesCreated:         counters.NodesCreated(),
		NodesDeleted:         counters.NodesDeleted(),
		RelationshipsCreated: counters.RelationshipsCreated(),
		RelationshipsDeleted: counters.RelationshipsDeleted(),
		PropertiesSet:        counters.PropertiesSet(),
		LabelsAdded:          counters.LabelsAdded(),
		LabelsRemoved:        counters.LabelsRemoved(),
		IndexesAdded:         counters.IndexesAdded(),
		IndexesRemoved:       counters.IndexesRemoved(),
		ConstraintsAdded:     counters.ConstraintsAdded(),
		ConstraintsRemoved:   counters.ConstraintsRemoved(),
	}
}
