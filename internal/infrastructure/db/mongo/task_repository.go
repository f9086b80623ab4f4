package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taskboard/task-management-api/internal/core/domain"
	"github.com/taskboard/task-management-api/internal/core/ports"
)

const collectionTasks = "tasks"

type TaskRepository struct {
	coll *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{coll: db.Collection(collectionTasks)}
}

type mongoTask struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Status      string             `bson:"status"`
	Priority    string             `bson:"priority"`
	AuthorID    string             `bson:"author_id"`
	ExecutorID  string             `bson:"executor_id,omitempty"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

// Create inserts a new task. The unique index on title converts a lost
// duplicate race into domain.ErrTaskExists.
func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toMongoTask(task))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, &domain.TitleInUseError{Title: task.Title}
		}
		return nil, fmt.Errorf("insert task: %w", err)
	}

	created := *task
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// Update replaces the stored document for the task.
func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	oid, err := primitive.ObjectIDFromHex(task.ID)
	if err != nil {
		return nil, domain.ErrTaskNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toMongoTask(task)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, &domain.TitleInUseError{Title: task.Title}
		}
		return nil, fmt.Errorf("update task: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTaskNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTaskNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mt mongoTask
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return mt.toDomain(), nil
}

func (r *TaskRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"title": title}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count tasks by title: %w", err)
	}
	return n > 0, nil
}

func (r *TaskRepository) ListByAuthor(ctx context.Context, authorID string, page ports.PageRequest) ([]*domain.Task, int64, error) {
	return r.list(ctx, bson.M{"author_id": authorID}, page)
}

func (r *TaskRepository) ListByExecutor(ctx context.Context, executorID string, page ports.PageRequest) ([]*domain.Task, int64, error) {
	return r.list(ctx, bson.M{"executor_id": executorID}, page)
}

func (r *TaskRepository) list(ctx context.Context, filter bson.M, page ports.PageRequest) ([]*domain.Task, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count tasks: %w", err)
	}

	opts := options.Find().
		SetSkip(int64(page.Offset())).
		SetLimit(int64(page.Size)).
		SetSort(sortSpec(page.Sort))

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find tasks: %w", err)
	}
	defer cur.Close(ctx)

	var tasks []*domain.Task
	for cur.Next(ctx) {
		var mt mongoTask
		if err := cur.Decode(&mt); err != nil {
			return nil, 0, fmt.Errorf("decode task: %w", err)
		}
		tasks = append(tasks, mt.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, total, nil
}

// EnsureIndexes creates the indexes backing title uniqueness and the
// list queries.
func (r *TaskRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "title", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "author_id", Value: 1}}},
		{Keys: bson.D{{Key: "executor_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

// sortSpec translates "field" / "-field" into a mongo sort document,
// defaulting to newest-first.
func sortSpec(sort string) bson.D {
	if sort == "" {
		return bson.D{{Key: "created_at", Value: -1}}
	}
	dir := 1
	field := sort
	if strings.HasPrefix(sort, "-") {
		dir = -1
		field = sort[1:]
	}
	return bson.D{{Key: field, Value: dir}}
}

func toMongoTask(t *domain.Task) mongoTask {
	return mongoTask{
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		AuthorID:    t.AuthorID,
		ExecutorID:  t.ExecutorID,
		CreatedAt:   t.CreatedAt.Unix(),
		UpdatedAt:   t.UpdatedAt.Unix(),
	}
}

func (mt *mongoTask) toDomain() *domain.Task {
	return &domain.Task{
		ID:          mt.ID.Hex(),
		Title:       mt.Title,
		Description: mt.Description,
		Status:      domain.TaskStatus(mt.Status),
		Priority:    domain.TaskPriority(mt.Priority),
		AuthorID:    mt.AuthorID,
		ExecutorID:  mt.ExecutorID,
		CreatedAt:   unixToTime(mt.CreatedAt),
		UpdatedAt:   unixToTime(mt.UpdatedAt),
	}
}
