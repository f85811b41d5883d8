package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"SaveNServe-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockNotifyRepository struct {
	items    []*entities.Item
	users    []*entities.User
	itemsErr error
}

func (m *mockNotifyRepository) GetExpiringItems(_ context.Context, from, until time.Time) ([]*entities.Item, error) {
	if m.itemsErr != nil {
		return nil, m.itemsErr
	}
	var out []*entities.Item
	for _, item := range m.items {
		if item.BestBefore == nil {
			continue
		}
		if item.BestBefore.After(from) && item.BestBefore.Before(until) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *mockNotifyRepository) GetSubscribedUsers(context.Context) ([]*entities.User, error) {
	return m.users, nil
}

type sentMail struct {
	to      string
	subject string
	body    string
}

func TestSendExpiryDigest(t *testing.T) {
	soon := time.Now().AddDate(0, 0, 2)
	far := time.Now().AddDate(0, 0, 30)
	repo := &mockNotifyRepository{
		items: []*entities.Item{
			{ID: uuid.New(), Name: "brie", Price: 8, BestBefore: &soon, AutoDiscount: true},
			{ID: uuid.New(), Name: "flour", Price: 2, BestBefore: &far},
		},
		users: []*entities.User{
			{ID: uuid.New(), Email: "a@example.com", IsSubscribed: true, IsVerified: true},
			{ID: uuid.New(), Email: "b@example.com", IsSubscribed: true, IsVerified: true},
		},
	}

	var sent []sentMail
	svc := &notifyService{
		notifyRepository: repo,
		sendMail: func(to, subject, body string) error {
			sent = append(sent, sentMail{to, subject, body})
			return nil
		},
	}

	count, err := svc.SendExpiryDigest(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	require.Len(t, sent, 2)
	assert.Equal(t, "a@example.com", sent[0].to)
	assert.Contains(t, sent[0].body, "brie")
	assert.NotContains(t, sent[0].body, "flour")
}

func TestSendExpiryDigest_NothingExpiring(t *testing.T) {
	repo := &mockNotifyRepository{
		users: []*entities.User{{Email: "a@example.com"}},
	}

	called := false
	svc := &notifyService{
		notifyRepository: repo,
		sendMail: func(string, string, string) error {
			called = true
			return nil
		},
	}

	count, err := svc.SendExpiryDigest(context.Background(), 5)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.False(t, called, "no digest goes out when nothing is expiring")
}

func TestSendExpiryDigest_MailFailureSkipsUser(t *testing.T) {
	soon := time.Now().AddDate(0, 0, 1)
	repo := &mockNotifyRepository{
		items: []*entities.Item{{ID: uuid.New(), Name: "milk", Price: 1.5, BestBefore: &soon, AutoDiscount: true}},
		users: []*entities.User{
			{Email: "bounces@example.com"},
			{Email: "works@example.com"},
		},
	}

	svc := &notifyService{
		notifyRepository: repo,
		sendMail: func(to, _, _ string) error {
			if to == "bounces@example.com" {
				return errors.New("mailbox full")
			}
			return nil
		},
	}

	count, err := svc.SendExpiryDigest(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestBuildDigestBody(t *testing.T) {
	now := time.Now()
	bb := now.AddDate(0, 0, 1)
	body := buildDigestBody(now, []*entities.Item{
		{Name: "ribeye", Price: 20, BestBefore: &bb, AutoDiscount: true},
	})

	assert.Contains(t, body, "ribeye")
	assert.Contains(t, body, "10.00") // last-day auto discount halves the price
	assert.Contains(t, body, "1 day(s) left")
}
