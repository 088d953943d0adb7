package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"lifetrack/model"
)

// FirestoreStore keeps one collection per table with the document id as
// the row id. Row-level access control lives in the hosted store's
// security rules, not here.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func notFoundAsNoRow(err error) error {
	if status.Code(err) == codes.NotFound {
		return ErrNoRow
	}
	return err
}

func (s *FirestoreStore) ListTasksByUser(ctx context.Context, userID string) ([]model.Task, error) {
	iter := s.client.Collection(TableTasks).
		Where("user_id", "==", userID).
		OrderBy("created_at", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var tasks []model.Task
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var t model.Task
		if err := doc.DataTo(&t); err != nil {
			return nil, err
		}
		t.TaskID = doc.Ref.ID
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func (s *FirestoreStore) GetTask(ctx context.Context, taskID string) (*model.Task, error) {
	doc, err := s.client.Collection(TableTasks).Doc(taskID).Get(ctx)
	if err != nil {
		return nil, notFoundAsNoRow(err)
	}
	var t model.Task
	if err := doc.DataTo(&t); err != nil {
		return nil, err
	}
	t.TaskID = doc.Ref.ID
	return &t, nil
}

func (s *FirestoreStore) CreateTask(ctx context.Context, t *model.Task) error {
	if t.TaskID == "" {
		t.TaskID = uuid.New().String()
	}
	_, err := s.client.Collection(TableTasks).Doc(t.TaskID).Set(ctx, t)
	return err
}

func (s *FirestoreStore) UpdateTask(ctx context.Context, taskID string, patch map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(patch))
	for column, value := range patch {
		updates = append(updates, firestore.Update{Path: column, Value: value})
	}
	_, err := s.client.Collection(TableTasks).Doc(taskID).Update(ctx, updates)
	if err != nil {
		return notFoundAsNoRow(err)
	}
	return nil
}

func (s *FirestoreStore) DeleteTask(ctx context.Context, taskID string) error {
	_, err := s.client.Collection(TableTasks).Doc(taskID).Delete(ctx)
	return err
}

func (s *FirestoreStore) GetGoalByUser(ctx context.Context, userID string) (*model.Goal, error) {
	docs, err := s.client.Collection(TableGoals).
		Where("user_id", "==", userID).
		Limit(1).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNoRow
	}
	var g model.Goal
	if err := docs[0].DataTo(&g); err != nil {
		return nil, err
	}
	g.GoalID = docs[0].Ref.ID
	return &g, nil
}

func (s *FirestoreStore) CreateGoal(ctx context.Context, g *model.Goal) error {
	if g.GoalID == "" {
		g.GoalID = uuid.New().String()
	}
	_, err := s.client.Collection(TableGoals).Doc(g.GoalID).Set(ctx, g)
	return err
}

func (s *FirestoreStore) UpdateGoal(ctx context.Context, goalID string, g *model.Goal) error {
	// Update, unlike Set, refuses to mint a document for an unknown id.
	updates := []firestore.Update{
		{Path: "user_id", Value: g.UserID},
		{Path: "family", Value: g.Family},
		{Path: "finances", Value: g.Finances},
		{Path: "relationship", Value: g.Relationship},
		{Path: "faith", Value: g.Faith},
		{Path: "health", Value: g.Health},
		{Path: "purpose", Value: g.Purpose},
	}
	_, err := s.client.Collection(TableGoals).Doc(goalID).Update(ctx, updates)
	if err != nil {
		return notFoundAsNoRow(err)
	}
	return nil
}

func (s *FirestoreStore) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	doc, err := s.client.Collection(TableProfiles).Doc(userID).Get(ctx)
	if err != nil {
		return nil, notFoundAsNoRow(err)
	}
	var p model.Profile
	if err := doc.DataTo(&p); err != nil {
		return nil, err
	}
	p.UserID = doc.Ref.ID
	return &p, nil
}

func (s *FirestoreStore) UpsertProfile(ctx context.Context, p *model.Profile) error {
	_, err := s.client.Collection(TableProfiles).Doc(p.UserID).Set(ctx, p)
	return err
}

func (s *FirestoreStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	docs, err := s.client.Collection(TableUsers).
		Where("email", "==", email).
		Limit(1).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNoRow
	}
	var u model.User
	if err := docs[0].DataTo(&u); err != nil {
		return nil, err
	}
	u.UserID = docs[0].Ref.ID
	return &u, nil
}

func (s *FirestoreStore) GetUserByID(ctx context.Context, userID string) (*model.User, error) {
	doc, err := s.client.Collection(TableUsers).Doc(userID).Get(ctx)
	if err != nil {
		return nil, notFoundAsNoRow(err)
	}
	var u model.User
	if err := doc.DataTo(&u); err != nil {
		return nil, err
	}
	u.UserID = doc.Ref.ID
	return &u, nil
}

func (s *FirestoreStore) CreateUser(ctx context.Context, u *model.User) error {
	if u.UserID == "" {
		u.UserID = uuid.New().String()
	}
	_, err := s.client.Collection(TableUsers).Doc(u.UserID).Set(ctx, u)
	return err
}

func (s *FirestoreStore) SaveRefreshToken(ctx context.Context, rec *model.RefreshTokenRecord) error {
	_, err := s.client.Collection(TableRefreshTokens).Doc(rec.UserID).Set(ctx, rec)
	return err
}

func (s *FirestoreStore) GetRefreshToken(ctx context.Context, userID string) (*model.RefreshTokenRecord, error) {
	doc, err := s.client.Collection(TableRefreshTokens).Doc(userID).Get(ctx)
	if err != nil {
		return nil, notFoundAsNoRow(err)
	}
	var rec model.RefreshTokenRecord
	if err := doc.DataTo(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *FirestoreStore) RevokeRefreshToken(ctx context.Context, userID string) error {
	_, err := s.client.Collection(TableRefreshTokens).Doc(userID).Update(ctx, []firestore.Update{
		{Path: "revoked", Value: true},
	})
	if err != nil {
		return notFoundAsNoRow(err)
	}
	return nil
}
