package worker

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/streadway/amqp"

	"text2phenotype.com/absa/pipeline"
	"text2phenotype.com/absa/tasks"
	"text2phenotype.com/absa/utils"
)

var errPipelineClosed = errors.New("pipeline channel was closed before returning anything")

// Message is the sequencer envelope. RedisKey names the chunk task.
type Message struct {
	WorkType string `json:"work_type"`
	RedisKey string `json:"redis_key"`
	Sender   string `json:"sender"`
	Version  string `json:"version"`
}

type Task struct {
	delivery  *amqp.Delivery
	chunkTask *tasks.ChunkTask
	message   *Message
	redisKey  string
	log       *zerolog.Logger
}

func (worker *Worker) processMessage(delivery *amqp.Delivery) {
	task, err := worker.createTask(delivery)
	rejectLogger := worker.log.With().Str("message_id", delivery.MessageId).Logger()
	if err != nil {
		worker.log.Err(err).
			Str("message_id", delivery.MessageId).
			Str("tid", string(delivery.Body)).
			Msg("Failed to create task for delivery")
		worker.rmq.rejectDelivery(delivery, &rejectLogger)
		return
	}
	if err = worker.processTask(task); err != nil {
		worker.rmq.rejectDelivery(delivery, &rejectLogger)
		return
	}
	if err = worker.rmq.pingSequencer(task, *task.message); err != nil {
		task.log.Err(err).Msg("Got error while sending message to sequencer queue")
		worker.rmq.rejectDelivery(delivery, &rejectLogger)
		return
	}
	if err = worker.rmq.acknowledgeDelivery(delivery); err != nil {
		task.log.Err(err).Msg("Failed to acknowledge delivery")
	}
	task.log.Info().Msg("Finished processing RMQ message")
}

func (worker *Worker) createTask(delivery *amqp.Delivery) (*Task, error) {
	var message Message
	err := json.Unmarshal(delivery.Body, &message)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal message, got error %w", err)
	}
	chunkTask, err := worker.redis.getChunkTask(message.RedisKey)
	if err != nil {
		return nil, fmt.Errorf("failed to query chunk task for message, got error %w", err)
	}
	taskLogger := worker.log.With().Str("tid", message.RedisKey).Logger()
	task := Task{
		delivery:  delivery,
		chunkTask: chunkTask,
		redisKey:  message.RedisKey,
		message:   &message,
		log:       &taskLogger,
	}
	return &task, nil
}

func (worker *Worker) processTask(task *Task) error {
	shouldPerform, err := worker.shouldPerformTask(task)
	if err != nil {
		task.log.Err(err).
			Msg("Got error while trying to decide whether to run task")
		return err
	}
	if !shouldPerform {
		return nil
	}
	if err = worker.redis.onTaskStarted(task); err != nil {
		task.log.Err(err).Msg("Failed to update task info")
		return fmt.Errorf("failed to update TaskInfo: %w", err)
	}
	if err = worker.runPipeline(task); err != nil {
		task.log.Err(err).Msg("Got error while running pipeline")
		if err = worker.redis.onTaskFailedWithError(task, err); err != nil {
			return err
		}
		return nil
	}
	task.log.Info().Msg("Saved results, marking task as complete")
	if err = worker.redis.onTaskComplete(task); err != nil {
		task.log.Err(err).Msg("Got error while trying to mark task as complete")
		return err
	}
	return nil
}

// buildRequest downloads the chunk text and, when the chunk names one, its
// external parse.
func (worker *Worker) buildRequest(task *Task) (pipeline.Request, error) {
	data, err := worker.s3.getProcessedData(task)
	if err != nil {
		task.log.Err(err).Caller().Msg("Could not fetch text data from s3")
		return pipeline.Request{}, fmt.Errorf("failed fetch data from s3: %w", err)
	}
	request := pipeline.Request{
		Tid:  task.redisKey,
		Text: string(data),
	}
	if len(task.chunkTask.ParseFileKey) == 0 {
		return request, nil
	}
	parse, err := worker.s3.getParseData(task)
	if err != nil {
		task.log.Err(err).Caller().
			Str("parse_file_key", task.chunkTask.ParseFileKey).
			Msg("Could not fetch parse data from s3")
		return pipeline.Request{}, fmt.Errorf("failed fetch parse from s3: %w", err)
	}
	request.Parse = string(parse)
	return request, nil
}

func (worker *Worker) runPipeline(task *Task) (err error) {
	defer utils.RecoverWithError(&err)
	task.log.Info().
		Int("attempt", task.chunkTask.Info().Attempts).
		Bool("external_parse", len(task.chunkTask.ParseFileKey) > 0).
		Msg("Processing message from RMQ")
	request, err := worker.buildRequest(task)
	if err != nil {
		return err
	}
	result, ok := <-worker.ppln(request)
	if !ok {
		task.log.Error().Msg("Pipeline channel was closed before returning anything")
		return errPipelineClosed
	}
	task.log.Info().Int("result_bytes", len(result)).Msg("Finished pipeline, saving results to s3")
	if err = worker.s3.saveResultsFile(task, result); err != nil {
		task.log.Err(err).Msg("Got error while trying to save results")
		return err
	}
	return nil
}

func (worker *Worker) shouldPerformTask(task *Task) (bool, error) {
	taskInfo := task.chunkTask.Info()
	taskLogger := task.log

	if taskInfo.Status.Complete() {
		taskLogger.Info().Msg("Task is already done. (might indicate issue acking message with RMQ). Sending back to Sequencer.")
		return false, nil
	}
	taskJob, err := worker.redis.getJobTask(task)
	if err != nil {
		taskLogger.Err(err).Msg("Failed to query job task for chunk task")
		return false, err
	}
	if taskJob.UserCanceled {
		taskLogger.Info().Msg("Job was canceled, no need to perform this task. Sending back to Sequencer.")
		err := worker.redis.onTaskCancelled(task)
		return false, err
	}
	var docTask *tasks.DocumentTaskCached
	if taskJob.StopDocumentsOnFailure {
		docTask, err = worker.redis.getDocTask(task)
		if err != nil {
			return false, err
		}
		if docTask == nil {
			return false, errors.New("document task not found")
		}
	}
	if taskJob.StopDocumentsOnFailure && len(docTask.FailedTasks) > 0 {
		failedTask := docTask.FailedTasks[0]
		taskLogger.Info().Msgf("Task is not required because the \"%s\" already completed failure "+
			"and document won't be processed successfully. Sending back to Sequencer.", failedTask)
		err := worker.redis.onTaskCancelled(
			task,
			fmt.Sprintf(
				"Task was marked as \"%s\" because of the current document has failed "+
					"in the \"%s\" worker and won't be processed successfully.",
				tasks.TaskStatusCanceled,
				failedTask,
			),
		)
		return false, err
	}
	if taskInfo.Attempts >= worker.config.TaskMaxRetries {
		taskLogger.Info().Msg("ABSA task has exceeded retries. Sending back to Sequencer.")
		err = worker.redis.onTaskExceededRetries(task, worker.config.TaskMaxRetries)
		return false, err
	}
	return true, nil
}
