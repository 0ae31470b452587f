package client

import (
	"context"
	"fmt"
	"sync"

	"goldencitizen-backend/internal/apperrors"
	"goldencitizen-backend/internal/logger"
)

type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// User-facing failure messages.
const (
	MsgPropertiesFailed = "Emlak bilgileri yüklenirken bir hata oluştu."
	MsgCompanyFailed    = "Şirket bilgileri yüklenirken bir hata oluştu."
	MsgNotConfigured    = "İçerik şu anda gösterilemiyor. Lütfen daha sonra tekrar deneyin."
)

// State is exactly one of Loading, Ready(Data) or Failed(Message).
type State[T any] struct {
	Status  Status
	Data    T
	Message string
	Err     error
}

func (s State[T]) Loading() bool { return s.Status == StatusLoading }
func (s State[T]) Ready() bool   { return s.Status == StatusReady }
func (s State[T]) Failed() bool  { return s.Status == StatusFailed }

type FetchFunc[T any] func(ctx context.Context) (T, error)

// Resource runs one fetch per Load and holds its outcome. It never retries
// by itself; Retry is the user-triggered path.
type Resource[T any] struct {
	mu          sync.Mutex
	fetch       FetchFunc[T]
	failMessage string
	log         logger.Logger
	state       State[T]
}

func NewResource[T any](fetch FetchFunc[T], failMessage string, log logger.Logger) *Resource[T] {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Resource[T]{
		fetch:       fetch,
		failMessage: failMessage,
		log:         log,
		state:       State[T]{Status: StatusLoading},
	}
}

// Load performs the fetch and returns the settled state. A fetch that
// errors or panics ends in Failed.
func (r *Resource[T]) Load(ctx context.Context) State[T] {
	r.mu.Lock()
	r.state = State[T]{Status: StatusLoading}
	r.mu.Unlock()

	data, err := r.safeFetch(ctx)

	var next State[T]
	if err != nil {
		msg := r.failMessage
		if apperrors.Is(err, apperrors.CodeNotFound) {
			// Eksik tekil içerik yapılandırma hatası, kullanıcıya genel mesaj
			r.log.WithError(err).Error("Beklenen içerik bulunamadı", nil)
			msg = MsgNotConfigured
		} else {
			r.log.WithError(err).Warn("İçerik yüklenemedi", nil)
		}
		next = State[T]{Status: StatusFailed, Message: msg, Err: err}
	} else {
		next = State[T]{Status: StatusReady, Data: data}
	}

	r.mu.Lock()
	r.state = next
	r.mu.Unlock()
	return next
}

// Retry re-invokes the fetch.
func (r *Resource[T]) Retry(ctx context.Context) State[T] {
	return r.Load(ctx)
}

func (r *Resource[T]) State() State[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Resource[T]) safeFetch(ctx context.Context) (data T, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = apperrors.Internal("içerik yüklenirken beklenmeyen hata", fmt.Errorf("panic: %v", p))
		}
	}()
	return r.fetch(ctx)
}
