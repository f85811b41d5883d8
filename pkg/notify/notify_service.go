package notify

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"SaveNServe-Backend/entities"
	"SaveNServe-Backend/internal/utils/mailing"
	"SaveNServe-Backend/pkg/pricing"
)

// MailSender lets tests swap the SMTP transport out.
type MailSender func(toEmail string, subject string, body string) error

type (
	NotifyService interface {
		SendExpiryDigest(ctx context.Context, windowDays int) (int, error)
		StartNotifyLoop(ctx context.Context, interval time.Duration, windowDays int)
	}

	notifyService struct {
		notifyRepository NotifyRepository
		sendMail         MailSender
	}
)

func NewNotifyService(notifyRepository NotifyRepository) NotifyService {
	return &notifyService{
		notifyRepository: notifyRepository,
		sendMail:         mailing.SendMail,
	}
}

// SendExpiryDigest mails every subscribed user a digest of items whose
// best-before date falls within the next windowDays days. Returns the
// number of mails sent.
func (s *notifyService) SendExpiryDigest(ctx context.Context, windowDays int) (int, error) {
	now := time.Now()
	items, err := s.notifyRepository.GetExpiringItems(ctx, now, now.AddDate(0, 0, windowDays))
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 0, nil
	}

	users, err := s.notifyRepository.GetSubscribedUsers(ctx)
	if err != nil {
		return 0, err
	}

	body := buildDigestBody(now, items)
	subject := fmt.Sprintf("SaveNServe: %d items expiring soon at a discount", len(items))

	sent := 0
	for _, u := range users {
		if err := s.sendMail(u.Email, subject, body); err != nil {
			log.Printf("expiry digest to %s failed: %v", u.Email, err)
			continue
		}
		sent++
	}

	return sent, nil
}

func buildDigestBody(now time.Time, items []*entities.Item) string {
	var b strings.Builder
	b.WriteString("<p>These items are close to their best-before date and on sale:</p><ul>")
	for _, item := range items {
		sale := pricing.SalePrice(now, item.Price, item.BestBefore, item.AutoDiscount, item.CustomDiscounts)
		days := pricing.DaysUntil(now, *item.BestBefore)
		b.WriteString(fmt.Sprintf(
			"<li>%s: %.2f (was %.2f), %d day(s) left</li>",
			item.Name, sale, item.Price, days,
		))
	}
	b.WriteString("</ul>")
	return b.String()
}

func (s *notifyService) StartNotifyLoop(ctx context.Context, interval time.Duration, windowDays int) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if sent, err := s.SendExpiryDigest(ctx, windowDays); err != nil {
					log.Printf("expiry digest failed: %v", err)
				} else if sent > 0 {
					log.Printf("expiry digest sent to %d users", sent)
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}
