package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taskboard/task-management-api/internal/core/domain"
	"github.com/taskboard/task-management-api/internal/core/ports"
)

const collectionComments = "comments"

type CommentRepository struct {
	coll *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{coll: db.Collection(collectionComments)}
}

type mongoComment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Content   string             `bson:"content"`
	TaskID    string             `bson:"task_id"`
	UserID    string             `bson:"user_id"`
	CreatedAt int64              `bson:"created_at"`
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoComment{
		Content:   comment.Content,
		TaskID:    comment.TaskID,
		UserID:    comment.UserID,
		CreatedAt: comment.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	created := *comment
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *CommentRepository) ListByTask(ctx context.Context, taskID string, page ports.PageRequest) ([]*domain.Comment, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"task_id": taskID}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count comments: %w", err)
	}

	opts := options.Find().
		SetSkip(int64(page.Offset())).
		SetLimit(int64(page.Size)).
		SetSort(sortSpec(page.Sort))

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find comments: %w", err)
	}
	defer cur.Close(ctx)

	var comments []*domain.Comment
	for cur.Next(ctx) {
		var mc mongoComment
		if err := cur.Decode(&mc); err != nil {
			return nil, 0, fmt.Errorf("decode comment: %w", err)
		}
		comments = append(comments, mc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate comments: %w", err)
	}
	return comments, total, nil
}

// DeleteByTask implements the explicit cascade issued on task deletion.
func (r *CommentRepository) DeleteByTask(ctx context.Context, taskID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"task_id": taskID})
	if err != nil {
		return 0, fmt.Errorf("delete comments by task: %w", err)
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates the task_id index backing per-task listing and
// cascade delete.
func (r *CommentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "task_id", Value: 1}},
	})
	return err
}

func (mc *mongoComment) toDomain() *domain.Comment {
	return &domain.Comment{
		ID:        mc.ID.Hex(),
		Content:   mc.Content,
		TaskID:    mc.TaskID,
		UserID:    mc.UserID,
		CreatedAt: unixToTime(mc.CreatedAt),
	}
}
