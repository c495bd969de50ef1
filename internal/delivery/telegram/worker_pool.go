package telegram

import (
	"context"
	"log"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	defaultWorkerCount   = 10
	requestQueueSize     = 100
	maxRequestsPerSecond = 3
)

type messageRequest struct {
	ctx     context.Context
	message *tgbotapi.Message
}

// workerPool processes customer messages in parallel with a per-user rate
// limit, so one chatty customer cannot starve the rest.
type workerPool struct {
	requestQueue chan *messageRequest
	workerCount  int
	handler      *BotHandler
	wg           sync.WaitGroup

	rateMu    sync.Mutex
	lastSeen  map[int64]time.Time
	burstSize map[int64]int
}

func newWorkerPool(handler *BotHandler, workerCount int) *workerPool {
	if workerCount <= 0 {
		workerCount = defaultWorkerCount
	}
	return &workerPool{
		requestQueue: make(chan *messageRequest, requestQueueSize),
		workerCount:  workerCount,
		handler:      handler,
		lastSeen:     make(map[int64]time.Time),
		burstSize:    make(map[int64]int),
	}
}

func (wp *workerPool) start(ctx context.Context) {
	for i := 0; i < wp.workerCount; i++ {
		wp.wg.Add(1)
		go wp.worker(ctx)
	}
}

func (wp *workerPool) worker(ctx context.Context) {
	defer wp.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case req, ok := <-wp.requestQueue:
			if !ok {
				return
			}
			wp.handler.processText(req.ctx, req.message)
		}
	}
}

func (wp *workerPool) submit(ctx context.Context, message *tgbotapi.Message) {
	if !wp.allow(message.From.ID) {
		log.Printf("rate limited user %d", message.From.ID)
		return
	}
	select {
	case wp.requestQueue <- &messageRequest{ctx: ctx, message: message}:
	default:
		log.Printf("request queue full, dropping message from %d", message.From.ID)
	}
}

// allow applies a simple per-second burst limit per user.
func (wp *workerPool) allow(userID int64) bool {
	wp.rateMu.Lock()
	defer wp.rateMu.Unlock()

	now := time.Now()
	if now.Sub(wp.lastSeen[userID]) >= time.Second {
		wp.lastSeen[userID] = now
		wp.burstSize[userID] = 1
		return true
	}
	if wp.burstSize[userID] >= maxRequestsPerSecond {
		return false
	}
	wp.burstSize[userID]++
	return true
}

func (wp *workerPool) shutdown() {
	close(wp.requestQueue)
	wp.wg.Wait()
}
