//go:generate go run go.uber.org/mock/mockgen -source=gate_service.go -destination=../mocks/mock_gate_service.go -package=mocks
package services

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"kindwall/auth"
	"kindwall/classifier"
	"kindwall/domain"
	"kindwall/errors"
	"kindwall/moderation"
	"kindwall/observability"
	"kindwall/ratelimit"
	"kindwall/repositories"

	"github.com/abadojack/whatlanggo"
	"github.com/google/uuid"
)

type IGateService interface {
	Submit(ctx context.Context, submission domain.Submission) (domain.Outcome, error)
}

// GateService arbitrates whether a submission may enter the board:
// validate, resolve identity, pre-screen, rate-check, classify, then
// store and commit quota. No lock is held across the classifier call.
type GateService struct {
	log             *slog.Logger
	hasher          auth.Hasher
	screener        *moderation.Screener
	limiter         ratelimit.ILimiter
	classifier      classifier.IClassifier
	messages        repositories.IMessageRepository
	monitor         *observability.Monitor
	classifyTimeout time.Duration
}

func NewGateService(
	log *slog.Logger,
	hasher auth.Hasher,
	screener *moderation.Screener,
	limiter ratelimit.ILimiter,
	classifier classifier.IClassifier,
	messages repositories.IMessageRepository,
	monitor *observability.Monitor,
	classifyTimeout time.Duration,
) *GateService {
	return &GateService{
		log:             log,
		hasher:          hasher,
		screener:        screener,
		limiter:         limiter,
		classifier:      classifier,
		messages:        messages,
		monitor:         monitor,
		classifyTimeout: classifyTimeout,
	}
}

// Submit runs one submission through the gate. Business rejections
// come back as outcomes with structured detail; infrastructure faults
// are logged here and come back as generic outcome kinds. The only
// error is ErrInvalidIdentity, which means a misconfigured caller.
func (s *GateService) Submit(ctx context.Context, submission domain.Submission) (domain.Outcome, error) {
	text := strings.TrimSpace(submission.Text)
	if text == "" {
		s.monitor.RejectedInvalid()
		return domain.Outcome{Kind: domain.OutcomeInvalid, Reason: "message is empty"}, nil
	}
	if utf8.RuneCountInString(text) > auth.MaxMessageLength {
		s.monitor.RejectedInvalid()
		return domain.Outcome{Kind: domain.OutcomeInvalid, Reason: "message is too long"}, nil
	}

	identity, err := s.resolveIdentity(submission)
	if err != nil {
		return domain.Outcome{}, err
	}

	// A blocklisted term never reaches the classifier and never
	// spends quota.
	if found := s.screener.Screen(text); len(found) > 0 {
		s.log.Info("Submission blocked by pre-screen", "terms", found)
		s.monitor.RejectedBlocklist()
		return domain.Outcome{Kind: domain.OutcomeNotPositive, Reason: "message contains blocked terms"}, nil
	}

	status, err := s.limiter.Check(identity)
	if err != nil {
		if err == errors.ErrInvalidIdentity {
			return domain.Outcome{}, err
		}
		s.log.Error("Rate limit check failed", "error", err)
		s.monitor.StoreError()
		return domain.Outcome{Kind: domain.OutcomeStorageFailed}, nil
	}
	if !status.Allowed {
		s.monitor.RejectedRateLimit()
		return domain.Outcome{
			Kind:      domain.OutcomeRateLimited,
			Remaining: status.Remaining,
			ResetTime: status.ResetTime,
		}, nil
	}

	classifyCtx, cancel := context.WithTimeout(ctx, s.classifyTimeout)
	defer cancel()
	verdict, err := s.classifier.Classify(classifyCtx, text)
	if err != nil {
		// The action was not completed, so the quota stays untouched.
		s.log.Error("Classifier call failed", "error", err)
		s.monitor.ClassifierError()
		return domain.Outcome{Kind: domain.OutcomeClassifierFailed}, nil
	}
	if !verdict.IsPositive {
		s.monitor.RejectedVerdict()
		return domain.Outcome{Kind: domain.OutcomeNotPositive, Reason: verdict.Reason}, nil
	}

	message := domain.Message{
		ID:        uuid.New(),
		Text:      text,
		CreatedAt: time.Now().UTC(),
		EmailHash: identity.EmailHash,
		Country:   submission.Country,
		Lang:      detectLang(text),
	}

	// Store before commit: quota is only spent on durably recorded
	// messages.
	if err := s.messages.Store(message); err != nil {
		s.log.Error("Message store failed", "error", err)
		s.monitor.StoreError()
		return domain.Outcome{Kind: domain.OutcomeStorageFailed}, nil
	}

	if err := s.limiter.Commit(identity); err != nil {
		// The message is safely stored; losing one quota tick is the
		// accepted inconsistency, rolling back the store is not.
		s.log.Warn("Quota commit failed after store", "error", err)
		s.monitor.StoreError()
	}

	s.monitor.Accepted()
	return domain.Outcome{Kind: domain.OutcomeAccepted}, nil
}

// resolveIdentity hashes the raw identifiers immediately; nothing past
// this point sees the raw email or IP. Email wins over IP as the
// rate-limit bucket.
func (s *GateService) resolveIdentity(submission domain.Submission) (domain.Identity, error) {
	if submission.Email == "" && submission.IP == "" {
		return domain.Identity{}, errors.ErrInvalidIdentity
	}

	var identity domain.Identity
	if submission.Email != "" {
		identity.EmailHash = s.hasher.HashEmail(submission.Email)
	}
	if submission.IP != "" {
		identity.IPHash = s.hasher.HashIP(submission.IP)
	}
	return identity, nil
}

func detectLang(text string) string {
	info := whatlanggo.Detect(text)
	return info.Lang.Iso6391()
}
