package worker

import (
	"path"
	"time"

	"text2phenotype.com/absa/tasks"
)

const RFC3339Micro = "2006-01-02T15:04:05.000000-07:00"

// getResultsFileKey places the result next to the other chunk outputs:
// processed/documents/<doc>/chunks/<chunk>/<chunk>.absa_results.json
func getResultsFileKey(task *Task) string {
	return path.Join(
		"processed",
		"documents",
		task.chunkTask.DocID,
		"chunks",
		task.redisKey,
		task.redisKey+"."+tasks.TaskName+"_results.json",
	)
}

func getFormattedNow() *string {
	now := time.Now().UTC().Format(RFC3339Micro)
	return &now
}
