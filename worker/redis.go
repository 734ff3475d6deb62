package worker

import (
	"fmt"

	"text2phenotype.com/absa/tasks"
)

type redisTransactions interface {
	getChunkTask(redisKey string) (*tasks.ChunkTask, error)
	getJobTask(task *Task) (*tasks.JobTask, error)
	getDocTask(task *Task) (*tasks.DocumentTaskCached, error)
	onTaskStarted(task *Task) error
	onTaskCancelled(task *Task, errorMessages ...string) error
	onTaskExceededRetries(task *Task, maxRetries int) error
	onTaskFailedWithError(task *Task, err error) error
	onTaskComplete(task *Task) error
	close()
}

type redisClientWrapper struct {
	tasksClient *tasks.Client
}

func (wrapper *redisClientWrapper) close() {
	wrapper.tasksClient.Close()
}

// updateInfo changes the aspect sentiment status of the chunk under the
// chunk lock.
func (wrapper *redisClientWrapper) updateInfo(task *Task, update func(info *tasks.ChunkTaskInfo)) error {
	return wrapper.tasksClient.Chunks.Update(task.redisKey, func(chunkTask *tasks.ChunkTask) {
		update(chunkTask.Info())
	})
}

func (wrapper *redisClientWrapper) onTaskStarted(task *Task) error {
	return wrapper.updateInfo(task, func(info *tasks.ChunkTaskInfo) {
		info.Status = tasks.TaskStatusStarted
		info.Attempts++
		info.StartedAt = getFormattedNow()
		info.CompletedAt = nil
	})
}

// finishWithoutRun closes a task that never reached the pipeline.
func finishWithoutRun(info *tasks.ChunkTaskInfo, status tasks.TaskStatus) {
	info.Status = status
	info.StartedAt = getFormattedNow()
	info.CompletedAt = getFormattedNow()
	info.Attempts++
}

func (wrapper *redisClientWrapper) onTaskCancelled(task *Task, errorMessages ...string) error {
	return wrapper.updateInfo(task, func(info *tasks.ChunkTaskInfo) {
		finishWithoutRun(info, tasks.TaskStatusCanceled)
		info.ErrorMessages = append(info.ErrorMessages, errorMessages...)
	})
}

func (wrapper *redisClientWrapper) onTaskExceededRetries(task *Task, maxRetries int) error {
	err := wrapper.tasksClient.Documents.Update(task.chunkTask.DocID, func(docTask *tasks.DocumentTask) {
		if docTask.FailedChunks == nil {
			docTask.FailedChunks = make(map[string][]string)
		}
		docTask.FailedTasks = append(docTask.FailedTasks, tasks.TaskName)
		docTask.FailedChunks[task.redisKey] = append(docTask.FailedChunks[task.redisKey], tasks.TaskName)
	})
	if err != nil {
		return err
	}
	return wrapper.updateInfo(task, func(info *tasks.ChunkTaskInfo) {
		finishWithoutRun(info, tasks.TaskStatusCompletedFailure)
		info.ErrorMessages = append(info.ErrorMessages, fmt.Sprintf(
			"Task has exceeded retries. (Attempts: %d, max retries: %d )",
			info.Attempts,
			maxRetries,
		))
	})
}

func (wrapper *redisClientWrapper) onTaskFailedWithError(task *Task, err error) error {
	return wrapper.updateInfo(task, func(info *tasks.ChunkTaskInfo) {
		info.Status = tasks.TaskStatusFailed
		info.CompletedAt = getFormattedNow()
		info.ErrorMessages = append(info.ErrorMessages, err.Error())
	})
}

func (wrapper *redisClientWrapper) onTaskComplete(task *Task) error {
	return wrapper.updateInfo(task, func(info *tasks.ChunkTaskInfo) {
		if !info.Status.Complete() {
			info.Status = tasks.TaskStatusCompletedSuccess
		}
		info.CompletedAt = getFormattedNow()
		info.ResultsFileKey = getResultsFileKey(task)
	})
}

func (wrapper *redisClientWrapper) getChunkTask(redisKey string) (*tasks.ChunkTask, error) {
	return wrapper.tasksClient.Chunks.Get(redisKey)
}

func (wrapper *redisClientWrapper) getJobTask(task *Task) (*tasks.JobTask, error) {
	return wrapper.tasksClient.Jobs.GetCached(task.chunkTask.JobID)
}

func (wrapper *redisClientWrapper) getDocTask(task *Task) (*tasks.DocumentTaskCached, error) {
	return wrapper.tasksClient.Documents.GetCached(task.chunkTask.DocID)
}
