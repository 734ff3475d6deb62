package worker

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/streadway/amqp"

	"text2phenotype.com/absa/pipeline"
	"text2phenotype.com/absa/tasks"
)

// The mocks embed the client interfaces and only implement what
// processMessage reaches. Calling anything else panics on the nil interface.

func mockError(method string) error {
	return fmt.Errorf("mock %s failed", method)
}

type pipelineMock struct {
	ppln    pipeline.Pipeline
	config  pipelineMockConfig
	calls   pipelineCall
	request pipeline.Request
}

type pipelineMockConfig struct {
	fail   bool
	result string
}

type pipelineCall struct {
	pipeline bool
}

func newPipelineMock(config pipelineMockConfig) *pipelineMock {
	mock := &pipelineMock{config: config}
	mock.ppln = func(request pipeline.Request) <-chan string {
		mock.calls.pipeline = true
		mock.request = request
		ch := make(chan string, 1)
		if !mock.config.fail {
			ch <- mock.config.result
		}
		close(ch)
		return ch
	}
	return mock
}

// redisMockConfig returns zero tasks unless one is set. failing lists the
// methods that return an error.
type redisMockConfig struct {
	chunkTask *tasks.ChunkTask
	jobTask   *tasks.JobTask
	docTask   *tasks.DocumentTaskCached
	failing   redisMockCalls
}

type redisMockCalls struct {
	getChunkTask          bool
	getJobTask            bool
	getDocTask            bool
	onTaskCancelled       bool
	onTaskStarted         bool
	onTaskExceededRetries bool
	onTaskFailedWithError bool
	onTaskComplete        bool
}

type redisMock struct {
	redisTransactions
	config redisMockConfig
	calls  redisMockCalls
}

func returnCopy[T any](value *T) *T {
	var copied T
	if value != nil {
		copied = *value
	}
	return &copied
}

func (mock *redisMock) getChunkTask(redisKey string) (*tasks.ChunkTask, error) {
	mock.calls.getChunkTask = true
	if mock.config.failing.getChunkTask {
		return nil, mockError("getChunkTask")
	}
	return returnCopy(mock.config.chunkTask), nil
}

func (mock *redisMock) getJobTask(task *Task) (*tasks.JobTask, error) {
	mock.calls.getJobTask = true
	if mock.config.failing.getJobTask {
		return nil, mockError("getJobTask")
	}
	return returnCopy(mock.config.jobTask), nil
}

func (mock *redisMock) getDocTask(task *Task) (*tasks.DocumentTaskCached, error) {
	mock.calls.getDocTask = true
	if mock.config.failing.getDocTask {
		return nil, mockError("getDocTask")
	}
	return returnCopy(mock.config.docTask), nil
}

func (mock *redisMock) onTaskStarted(task *Task) error {
	mock.calls.onTaskStarted = true
	if mock.config.failing.onTaskStarted {
		return mockError("onTaskStarted")
	}
	return nil
}

func (mock *redisMock) onTaskCancelled(task *Task, errorMessages ...string) error {
	mock.calls.onTaskCancelled = true
	if mock.config.failing.onTaskCancelled {
		return mockError("onTaskCancelled")
	}
	return nil
}

func (mock *redisMock) onTaskExceededRetries(task *Task, maxRetries int) error {
	mock.calls.onTaskExceededRetries = true
	if mock.config.failing.onTaskExceededRetries {
		return mockError("onTaskExceededRetries")
	}
	return nil
}

func (mock *redisMock) onTaskFailedWithError(task *Task, err error) error {
	mock.calls.onTaskFailedWithError = true
	if mock.config.failing.onTaskFailedWithError {
		return mockError("onTaskFailedWithError")
	}
	return nil
}

func (mock *redisMock) onTaskComplete(task *Task) error {
	mock.calls.onTaskComplete = true
	if mock.config.failing.onTaskComplete {
		return mockError("onTaskComplete")
	}
	return nil
}

type rmqMockConfig struct {
	failing rmqMockCalls
}

type rmqMockCalls struct {
	pingSequencer       bool
	acknowledgeDelivery bool
	rejectDelivery      bool
}

type rmqMock struct {
	rmqTransactions
	config rmqMockConfig
	calls  rmqMockCalls
}

func (mock *rmqMock) pingSequencer(task *Task, message Message) error {
	mock.calls.pingSequencer = true
	if mock.config.failing.pingSequencer {
		return mockError("pingSequencer")
	}
	return nil
}

func (mock *rmqMock) acknowledgeDelivery(delivery *amqp.Delivery) error {
	mock.calls.acknowledgeDelivery = true
	if mock.config.failing.acknowledgeDelivery {
		return mockError("acknowledgeDelivery")
	}
	return nil
}

func (mock *rmqMock) rejectDelivery(delivery *amqp.Delivery, log *zerolog.Logger) {
	mock.calls.rejectDelivery = true
}

// s3MockConfig serves "some input" as chunk text and an empty spaCy parse
// unless processed or parse are set.
type s3MockConfig struct {
	processed []byte
	parse     []byte
	failing   s3MockCalls
}

type s3MockCalls struct {
	getProcessedData bool
	getParseData     bool
	saveResultsFile  bool
}

type s3Mock struct {
	s3Transactions
	config s3MockConfig
	calls  s3MockCalls
}

func (mock *s3Mock) getProcessedData(task *Task) ([]byte, error) {
	mock.calls.getProcessedData = true
	if mock.config.failing.getProcessedData {
		return nil, mockError("getProcessedData")
	}
	if mock.config.processed == nil {
		return []byte("some input"), nil
	}
	return mock.config.processed, nil
}

func (mock *s3Mock) getParseData(task *Task) ([]byte, error) {
	mock.calls.getParseData = true
	if mock.config.failing.getParseData {
		return nil, mockError("getParseData")
	}
	if mock.config.parse == nil {
		return []byte("[]"), nil
	}
	return mock.config.parse, nil
}

func (mock *s3Mock) saveResultsFile(task *Task, result string) error {
	mock.calls.saveResultsFile = true
	if mock.config.failing.saveResultsFile {
		return mockError("saveResultsFile")
	}
	return nil
}
