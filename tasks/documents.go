package tasks

import (
	"golang.org/x/sync/errgroup"

	"text2phenotype.com/absa/redis"
	"text2phenotype.com/absa/utils/partial"
)

const DocumentsDB redis.DB = 0

type DocumentTask struct {
	partial.Base
	FailedTasks  []string            `json:"failed_tasks"`
	FailedChunks map[string][]string `json:"failed_chunks"`
}

type DocumentTaskCached struct {
	partial.Base
	DocInfo     map[string]interface{} `json:"document_info"`
	FailedTasks []string               `json:"failed_tasks"`
	JobID       string                 `json:"job_id"`
	WorkType    string                 `json:"work_type"`
}

type DocumentTasks struct {
	client redis.Client
}

func (tasks DocumentTasks) Get(redisKey string) (*DocumentTask, error) {
	return getDocument[DocumentTask](tasks.client, redisKey)
}

func (tasks DocumentTasks) GetCached(redisKey string) (*DocumentTaskCached, error) {
	return getDocument[DocumentTaskCached](tasks.client, cachedPropertiesKey(redisKey))
}

// Update applies updateFunc to the document task under its lock and
// rewrites both the full and the cached document.
func (tasks DocumentTasks) Update(redisKey string, updateFunc func(task *DocumentTask)) (err error) {
	releaseLock, err := tasks.client.Lock(redisKey)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = releaseLock()
			return
		}
		err = releaseLock()
	}()
	var task DocumentTask
	var cached DocumentTaskCached

	err = tasks.client.GetPartialDocument(redisKey, &task)
	if err != nil {
		return err
	}
	err = partial.ApplyUpdates(&task, updateFunc)
	if err != nil {
		return err
	}
	err = partial.CopyValues(&task, &cached)
	if err != nil {
		return err
	}
	// the cached copy mirrors the shared fields of the full document
	var g errgroup.Group
	g.Go(func() error { return tasks.client.SaveDoc(redisKey, &task) })
	g.Go(func() error { return tasks.client.SaveDoc(cachedPropertiesKey(redisKey), &cached) })
	return g.Wait()
}
