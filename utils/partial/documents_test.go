package partial

import (
	"testing"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/stretchr/testify/require"
)

type testInner struct {
	Status   string `json:"status"`
	Attempts int    `json:"attempts"`
}

type testStatuses struct {
	ABSA testInner `json:"absa"`
}

type testTask struct {
	Base
	DocID    string       `json:"document_id"`
	Statuses testStatuses `json:"task_statuses"`
	Started  *string      `json:"started_at,omitempty"`
}

type testCached struct {
	Base
	DocID string `json:"document_id"`
}

const storedTask = `{
	"document_id": "doc-1",
	"owner": "someone",
	"task_statuses": {
		"absa": {"status": "submitted", "attempts": 1, "dependencies": ["ocr"]},
		"ocr": {"status": "completed - success"}
	}
}`

func TestDecodeKeepsTypedFields(t *testing.T) {
	var task testTask
	require.NoError(t, Decode([]byte(storedTask), &task))
	require.Equal(t, "doc-1", task.DocID)
	require.Equal(t, "submitted", task.Statuses.ABSA.Status)
	require.Equal(t, 1, task.Statuses.ABSA.Attempts)
}

func TestEncodeKeepsUnknownFields(t *testing.T) {
	var task testTask
	require.NoError(t, Decode([]byte(storedTask), &task))

	started := "2020-01-01T00:00:00"
	err := ApplyUpdates(&task, func(task *testTask) {
		task.Statuses.ABSA.Status = "started"
		task.Statuses.ABSA.Attempts++
		task.Started = &started
	})
	require.NoError(t, err)

	actual, err := Encode(&task)
	require.NoError(t, err)

	expected := `{
		"document_id": "doc-1",
		"owner": "someone",
		"started_at": "2020-01-01T00:00:00",
		"task_statuses": {
			"absa": {"status": "started", "attempts": 2, "dependencies": ["ocr"]},
			"ocr": {"status": "completed - success"}
		}
	}`
	require.True(t, jsonpatch.Equal([]byte(expected), actual), string(actual))
}

func TestEncodeWithoutRaw(t *testing.T) {
	task := testTask{DocID: "doc-2"}
	actual, err := Encode(&task)
	require.NoError(t, err)
	expected := `{"document_id": "doc-2", "task_statuses": {"absa": {"status": "", "attempts": 0}}}`
	require.True(t, jsonpatch.Equal([]byte(expected), actual), string(actual))
}

func TestCopyValues(t *testing.T) {
	var task testTask
	require.NoError(t, Decode([]byte(storedTask), &task))
	task.DocID = "doc-3"

	var cached testCached
	require.NoError(t, CopyValues(&task, &cached))
	require.Equal(t, "doc-3", cached.DocID)

	actual, err := Encode(&cached)
	require.NoError(t, err)
	require.True(t, jsonpatch.Equal([]byte(`{"document_id": "doc-3"}`), actual), string(actual))
}

func TestApplyUpdatesRecoversPanic(t *testing.T) {
	var task testTask
	err := ApplyUpdates(&task, func(task *testTask) {
		var m map[string]int
		m["boom"] = 1
	})
	require.Error(t, err)
}
