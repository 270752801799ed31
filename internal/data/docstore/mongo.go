package docstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yungbote/zoomtube-backend/internal/platform/logger"
)

const (
	CollectionLecture        = "lecture"
	CollectionTranscriptLine = "transcript_line"
	CollectionComment        = "comment"
	CollectionIconFeedback   = "icon_feedback"
)

// Client wraps the MongoDB client and the lecture database.
type Client struct {
	mongoClient *mongo.Client
	database    *mongo.Database
	log         *logger.Logger
}

// Connect dials uri and verifies the connection with a ping.
func Connect(ctx context.Context, log *logger.Logger, uri, databaseName string) (*Client, error) {
	if strings.TrimSpace(uri) == "" {
		return nil, fmt.Errorf("mongo uri required")
	}
	if strings.TrimSpace(databaseName) == "" {
		databaseName = "zoomtube"
	}
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		_ = mongoClient.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	c := &Client{
		mongoClient: mongoClient,
		database:    mongoClient.Database(databaseName),
		log:         log.With("service", "MongoDocStore"),
	}
	c.log.Info("Connected to MongoDB", "database", databaseName)
	return c, nil
}

func (c *Client) Collection(name string) *mongo.Collection {
	return c.database.Collection(name)
}

func (c *Client) Database() *mongo.Database { return c.database }

// Close disconnects from MongoDB.
func (c *Client) Close(ctx context.Context) error {
	if c == nil || c.mongoClient == nil {
		return nil
	}
	return c.mongoClient.Disconnect(ctx)
}

// EnsureIndexes creates the per-lecture lookup indexes. CreateMany is a
// no-op for indexes that already exist with the same definition.
func (c *Client) EnsureIndexes(ctx context.Context) error {
	specs := map[string][]mongo.IndexModel{
		CollectionLecture: {
			{Keys: bson.D{{Key: "video_url", Value: 1}}},
			{Keys: bson.D{{Key: "created_at", Value: 1}}},
		},
		CollectionTranscriptLine: {
			{Keys: bson.D{{Key: "lecture_id", Value: 1}, {Key: "start_ms", Value: 1}}},
		},
		CollectionComment: {
			{Keys: bson.D{{Key: "lecture_id", Value: 1}, {Key: "created_at", Value: 1}}},
		},
		CollectionIconFeedback: {
			{Keys: bson.D{{Key: "lecture_id", Value: 1}}},
		},
	}
	for coll, models := range specs {
		if _, err := c.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", coll, err)
		}
	}
	return nil
}
