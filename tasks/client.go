package tasks

import (
	"fmt"

	"text2phenotype.com/absa/redis"
	"text2phenotype.com/absa/utils/partial"
)

type Client struct {
	Documents DocumentTasks
	Chunks    ChunkTasks
	Jobs      JobTasks
}

// NewClient connects to the document, job and chunk databases. Each task
// kind lives in its own Redis database.
func NewClient() (Client, error) {
	var clients [3]redis.Client
	for i, db := range []redis.DB{DocumentsDB, JobsDB, ChunksDB} {
		client, err := redis.NewClient(db)
		if err != nil {
			for _, opened := range clients[:i] {
				_ = opened.Close()
			}
			return Client{}, fmt.Errorf("redis db %d: %w", db, err)
		}
		clients[i] = client
	}
	return Client{
		Documents: DocumentTasks{client: clients[0]},
		Jobs:      JobTasks{client: clients[1]},
		Chunks:    ChunkTasks{client: clients[2]},
	}, nil
}

func (client *Client) Close() {
	_ = client.Chunks.client.Close()
	_ = client.Documents.client.Close()
	_ = client.Jobs.client.Close()
}

func cachedPropertiesKey(redisKey string) string {
	return redisKey + "-cached-properties"
}

func getDocument[T any, PT interface {
	*T
	partial.Document
}](client redis.Client, redisKey string) (*T, error) {
	var doc T
	if err := client.GetPartialDocument(redisKey, PT(&doc)); err != nil {
		return nil, err
	}
	return &doc, nil
}
