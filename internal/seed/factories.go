// Package seed creates demo and test data for the forum database. It is
// intended for development and testing only.
package seed

import (
	"context"
	"strings"

	"qaforum/internal/models"
	"qaforum/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
)

// Factory builds forum entities with fake content and persists them through
// the repositories, so ids come from storage like any other write.
type Factory struct {
	repos *repository.Repositories
	faker *gofakeit.Faker
}

// NewFactory returns a Factory. A zero seed draws a random one.
func NewFactory(repos *repository.Repositories, seed int64) *Factory {
	return &Factory{repos: repos, faker: gofakeit.New(seed)}
}

// BuildUser returns an unsaved user.
func (f *Factory) BuildUser(overrides ...func(*models.User)) *models.User {
	user := &models.User{
		FirstName: f.faker.FirstName(),
		LastName:  f.faker.LastName(),
	}
	for _, override := range overrides {
		override(user)
	}
	return user
}

// BuildQuestion returns an unsaved question by author.
func (f *Factory) BuildQuestion(author *models.User, overrides ...func(*models.Question)) *models.Question {
	title := strings.TrimSuffix(f.faker.Sentence(f.faker.Number(3, 8)), ".") + "?"
	question := &models.Question{
		Title:    title,
		Body:     f.faker.Paragraph(1, 3, 12, " "),
		AuthorID: author.ID,
	}
	for _, override := range overrides {
		override(question)
	}
	return question
}

// BuildReply returns an unsaved reply. A nil parent starts a thread.
func (f *Factory) BuildReply(question *models.Question, author *models.User, parent *models.Reply) *models.Reply {
	reply := &models.Reply{
		Body:       f.faker.Sentence(f.faker.Number(5, 20)),
		QuestionID: question.ID,
		UserID:     author.ID,
	}
	if parent != nil {
		parentID := parent.ID
		reply.ParentID = &parentID
	}
	return reply
}

func (f *Factory) CreateUser(ctx context.Context, overrides ...func(*models.User)) (*models.User, error) {
	user := f.BuildUser(overrides...)
	if err := f.repos.Users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (f *Factory) CreateQuestion(ctx context.Context, author *models.User, overrides ...func(*models.Question)) (*models.Question, error) {
	question := f.BuildQuestion(author, overrides...)
	if err := f.repos.Questions.Save(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

func (f *Factory) CreateReply(ctx context.Context, question *models.Question, author *models.User, parent *models.Reply) (*models.Reply, error) {
	reply := f.BuildReply(question, author, parent)
	if err := f.repos.Replies.Save(ctx, reply); err != nil {
		return nil, err
	}
	return reply, nil
}
