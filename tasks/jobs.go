package tasks

import (
	"text2phenotype.com/absa/redis"
	"text2phenotype.com/absa/utils/partial"
)

const JobsDB redis.DB = 1

type JobTask struct {
	partial.Base
	UserCanceled           bool `json:"user_canceled"`
	StopDocumentsOnFailure bool `json:"stop_documents_on_failure"`
}

type JobTasks struct {
	client redis.Client
}

func (tasks JobTasks) GetCached(redisKey string) (*JobTask, error) {
	return getDocument[JobTask](tasks.client, cachedPropertiesKey(redisKey))
}
