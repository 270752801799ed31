package lecturedoc

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yungbote/zoomtube-backend/internal/data/docstore"
	lecturerepo "github.com/yungbote/zoomtube-backend/internal/data/repos/lecture"
	types "github.com/yungbote/zoomtube-backend/internal/domain"
	"github.com/yungbote/zoomtube-backend/internal/platform/ctxutil"
	"github.com/yungbote/zoomtube-backend/internal/platform/dbctx"
	"github.com/yungbote/zoomtube-backend/internal/platform/logger"
)

type lectureRepo struct {
	coll *mongo.Collection
	log  *logger.Logger
}

func NewLectureRepo(client *docstore.Client, baseLog *logger.Logger) lecturerepo.LectureRepo {
	return &lectureRepo{
		coll: client.Collection(docstore.CollectionLecture),
		log:  baseLog.With("repo", "LectureDocRepo"),
	}
}

func (r *lectureRepo) Create(dbc dbctx.Context, lectures []*types.Lecture) ([]*types.Lecture, error) {
	if len(lectures) == 0 {
		return []*types.Lecture{}, nil
	}
	docs := make([]interface{}, 0, len(lectures))
	for _, l := range lectures {
		ensureID(&l.ID)
		ensureCreated(&l.CreatedAt)
		docs = append(docs, toLectureDoc(l))
	}
	if _, err := r.coll.InsertMany(ctxutil.Default(dbc.Ctx), docs); err != nil {
		return nil, fmt.Errorf("insert lectures: %w", err)
	}
	return lectures, nil
}

func (r *lectureRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Lecture, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	return r.findOne(dbc.Ctx, bson.M{"_id": id.String()})
}

func (r *lectureRepo) GetByVideoURL(dbc dbctx.Context, videoURL string) (*types.Lecture, error) {
	if videoURL == "" {
		return nil, nil
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	return r.findOne(dbc.Ctx, bson.M{"video_url": videoURL}, opts)
}

func (r *lectureRepo) findOne(ctx context.Context, filter bson.M, opts ...*options.FindOneOptions) (*types.Lecture, error) {
	var doc lectureDoc
	err := r.coll.FindOne(ctxutil.Default(ctx), filter, opts...).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find lecture: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *lectureRepo) List(dbc dbctx.Context) ([]*types.Lecture, error) {
	ctx := ctxutil.Default(dbc.Ctx)
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("query lectures: %w", err)
	}
	var docs []lectureDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode lectures: %w", err)
	}
	out := make([]*types.Lecture, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

type transcriptLineRepo struct {
	coll *mongo.Collection
	log  *logger.Logger
}

func NewTranscriptLineRepo(client *docstore.Client, baseLog *logger.Logger) lecturerepo.TranscriptLineRepo {
	return &transcriptLineRepo{
		coll: client.Collection(docstore.CollectionTranscriptLine),
		log:  baseLog.With("repo", "TranscriptLineDocRepo"),
	}
}

func (r *transcriptLineRepo) Create(dbc dbctx.Context, lines []*types.TranscriptLine) ([]*types.TranscriptLine, error) {
	if len(lines) == 0 {
		return []*types.TranscriptLine{}, nil
	}
	docs := make([]interface{}, 0, len(lines))
	for _, l := range lines {
		ensureID(&l.ID)
		docs = append(docs, toTranscriptLineDoc(l))
	}
	// Ordered insert keeps the parser's document order on disk.
	if _, err := r.coll.InsertMany(ctxutil.Default(dbc.Ctx), docs, options.InsertMany().SetOrdered(true)); err != nil {
		return nil, fmt.Errorf("insert transcript lines: %w", err)
	}
	return lines, nil
}

func (r *transcriptLineRepo) ListByLectureID(dbc dbctx.Context, lectureID uuid.UUID) ([]*types.TranscriptLine, error) {
	ctx := ctxutil.Default(dbc.Ctx)
	out := []*types.TranscriptLine{}
	if lectureID == uuid.Nil {
		return out, nil
	}
	opts := options.Find().SetSort(bson.D{{Key: "start_ms", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"lecture_id": lectureID.String()}, opts)
	if err != nil {
		return nil, fmt.Errorf("query transcript lines: %w", err)
	}
	var docs []transcriptLineDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode transcript lines: %w", err)
	}
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *transcriptLineRepo) CountByLectureID(dbc dbctx.Context, lectureID uuid.UUID) (int64, error) {
	n, err := r.coll.CountDocuments(ctxutil.Default(dbc.Ctx), bson.M{"lecture_id": lectureID.String()})
	if err != nil {
		return 0, fmt.Errorf("count transcript lines: %w", err)
	}
	return n, nil
}

type commentRepo struct {
	coll *mongo.Collection
	log  *logger.Logger
}

func NewCommentRepo(client *docstore.Client, baseLog *logger.Logger) lecturerepo.CommentRepo {
	return &commentRepo{
		coll: client.Collection(docstore.CollectionComment),
		log:  baseLog.With("repo", "CommentDocRepo"),
	}
}

func (r *commentRepo) Create(dbc dbctx.Context, comments []*types.Comment) ([]*types.Comment, error) {
	if len(comments) == 0 {
		return []*types.Comment{}, nil
	}
	docs := make([]interface{}, 0, len(comments))
	for _, c := range comments {
		ensureID(&c.ID)
		ensureCreated(&c.CreatedAt)
		docs = append(docs, toCommentDoc(c))
	}
	if _, err := r.coll.InsertMany(ctxutil.Default(dbc.Ctx), docs); err != nil {
		return nil, fmt.Errorf("insert comments: %w", err)
	}
	return comments, nil
}

func (r *commentRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Comment, error) {
	var doc commentDoc
	err := r.coll.FindOne(ctxutil.Default(dbc.Ctx), bson.M{"_id": id.String()}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find comment: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *commentRepo) ListByLectureID(dbc dbctx.Context, lectureID uuid.UUID) ([]*types.Comment, error) {
	ctx := ctxutil.Default(dbc.Ctx)
	out := []*types.Comment{}
	if lectureID == uuid.Nil {
		return out, nil
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"lecture_id": lectureID.String()}, opts)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	var docs []commentDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode comments: %w", err)
	}
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

type iconFeedbackRepo struct {
	coll *mongo.Collection
	log  *logger.Logger
}

func NewIconFeedbackRepo(client *docstore.Client, baseLog *logger.Logger) lecturerepo.IconFeedbackRepo {
	return &iconFeedbackRepo{
		coll: client.Collection(docstore.CollectionIconFeedback),
		log:  baseLog.With("repo", "IconFeedbackDocRepo"),
	}
}

func (r *iconFeedbackRepo) Create(dbc dbctx.Context, feedback []*types.IconFeedback) ([]*types.IconFeedback, error) {
	if len(feedback) == 0 {
		return []*types.IconFeedback{}, nil
	}
	docs := make([]interface{}, 0, len(feedback))
	for _, f := range feedback {
		ensureID(&f.ID)
		docs = append(docs, toIconFeedbackDoc(f))
	}
	if _, err := r.coll.InsertMany(ctxutil.Default(dbc.Ctx), docs); err != nil {
		return nil, fmt.Errorf("insert icon feedback: %w", err)
	}
	return feedback, nil
}

func (r *iconFeedbackRepo) ListByLectureID(dbc dbctx.Context, lectureID uuid.UUID) ([]*types.IconFeedback, error) {
	ctx := ctxutil.Default(dbc.Ctx)
	out := []*types.IconFeedback{}
	if lectureID == uuid.Nil {
		return out, nil
	}
	cursor, err := r.coll.Find(ctx, bson.M{"lecture_id": lectureID.String()})
	if err != nil {
		return nil, fmt.Errorf("query icon feedback: %w", err)
	}
	var docs []iconFeedbackDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode icon feedback: %w", err)
	}
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}
