package storage

import "github.com/vovakirdan/tui-collide/internal/scene"

// FromResult converts the i-th query result of a scene run to a record.
func FromResult(sceneID string, i int, r scene.Result) Record {
	return Record{
		SceneID: sceneID,
		Query:   r.Label(i),
		Kind:    r.Query.Kind,
		Value:   r.Value,
		Matched: r.Matched,
		Passed:  r.Passed,
	}
}

// FromResults converts every result of a scene run.
func FromResults(sceneID string, results []scene.Result) []Record {
	records := make([]Record, len(results))
	for i, r := range results {
		records[i] = FromResult(sceneID, i, r)
	}
	return records
}
