package notification

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/SherClockHolmes/webpush-go"

	"hotel-reservation-backend/internal/hotel"
	"hotel-reservation-backend/internal/model"
	"hotel-reservation-backend/internal/store"
)

// NotificationSender defines the interface for sending a web push notification.
type NotificationSender interface {
	Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

// WebPushSender is a real implementation of NotificationSender using the webpush library.
type WebPushSender struct{}

// Send sends a notification using the webpush library.
func (s *WebPushSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return webpush.SendNotification(payload, sub, options)
}

// WorkerPool consumes chain events: each one is written to the event ledger
// and, when it concerns a payer, pushed to that payer's subscriptions.
type WorkerPool struct {
	size    int
	jobs    chan hotel.Event
	done    chan struct{}
	store   store.Store
	webpush *webpush.Options
	sender  NotificationSender
}

// NewWorkerPool creates a new worker pool. A nil webpush configuration, or
// one without keys, disables push delivery but keeps the ledger.
func NewWorkerPool(size int, s store.Store, webpushOptions *webpush.Options) *WorkerPool {
	if size <= 0 {
		size = 1
	}
	return &WorkerPool{
		size:    size,
		jobs:    make(chan hotel.Event, size*16), // Buffered channel
		done:    make(chan struct{}),
		store:   s,
		webpush: webpushOptions,
		sender:  &WebPushSender{}, // Use the real sender by default
	}
}

// Start launches the worker goroutines.
func (wp *WorkerPool) Start(ctx context.Context) {
	go func() {
		<-ctx.Done()
		close(wp.done)
	}()
	for i := 0; i < wp.size; i++ {
		go wp.worker(ctx, i)
	}
}

// worker is the actual worker goroutine.
func (wp *WorkerPool) worker(ctx context.Context, id int) {
	log.Printf("Worker %d started", id)
	for {
		select {
		case event := <-wp.jobs:
			log.Printf("Worker %d processing %s for room %d in %s", id, event.Kind, event.RoomNumber, event.Hotel)
			wp.handle(ctx, event)
		case <-ctx.Done():
			log.Printf("Worker %d shutting down", id)
			return
		}
	}
}

// Dispatch queues an event. It satisfies hotel.EventSink. Once the pool has
// been stopped, events are dropped instead of blocking the caller.
func (wp *WorkerPool) Dispatch(event hotel.Event) {
	select {
	case wp.jobs <- event:
	case <-wp.done:
		log.Printf("Worker pool stopped; dropping %s event %s", event.Kind, event.ID)
	}
}

// Jobs returns the jobs channel for testing.
func (wp *WorkerPool) Jobs() chan hotel.Event {
	return wp.jobs
}

func (wp *WorkerPool) handle(ctx context.Context, event hotel.Event) {
	if err := wp.store.RecordEvent(ctx, event); err != nil {
		log.Printf("Error recording event %s: %v", event.ID, err)
	}
	if event.PayerID == "" || !wp.pushEnabled() {
		return
	}
	wp.notifyPayer(ctx, event)
}

func (wp *WorkerPool) pushEnabled() bool {
	return wp.webpush != nil && wp.webpush.VAPIDPrivateKey != ""
}

// Message is the JSON payload delivered to the browser.
type Message struct {
	Title             string `json:"title"`
	Body              string `json:"body"`
	Hotel             string `json:"hotel"`
	RoomNumber        int    `json:"roomNumber"`
	ReservationNumber int    `json:"reservationNumber"`
}

func messageFor(event hotel.Event) Message {
	m := Message{
		Hotel:             event.Hotel,
		RoomNumber:        event.RoomNumber,
		ReservationNumber: event.ReservationNumber,
	}
	switch event.Kind {
	case hotel.EventReservationCreated:
		m.Title = "Reservation confirmed"
		m.Body = "Reservation #" + strconv.Itoa(event.ReservationNumber) + " at " + event.Hotel + ", room " + strconv.Itoa(event.RoomNumber) +
			", " + event.StartDate.Format(time.DateOnly) + " to " + event.EndDate.Format(time.DateOnly) + "."
	case hotel.EventReservationCancelled:
		m.Title = "Reservation cancelled"
		m.Body = "Reservation #" + strconv.Itoa(event.ReservationNumber) + " at " + event.Hotel + " has been cancelled."
	default:
		m.Title = "Reservation update"
		m.Body = string(event.Kind) + " at " + event.Hotel + ", room " + strconv.Itoa(event.RoomNumber) + "."
	}
	return m
}

// notifyPayer fetches the payer's subscriptions and sends one push to each.
func (wp *WorkerPool) notifyPayer(ctx context.Context, event hotel.Event) {
	subscriptions, err := wp.store.SubscriptionsForPayer(ctx, event.PayerID)
	if err != nil {
		log.Printf("Error fetching subscriptions for payer %s: %v", event.PayerID, err)
		return
	}
	if len(subscriptions) == 0 {
		return
	}

	payload, err := json.Marshal(messageFor(event))
	if err != nil {
		log.Printf("Error encoding notification for event %s: %v", event.ID, err)
		return
	}

	log.Printf("Sending %d notifications for payer %s", len(subscriptions), event.PayerID)
	for _, sub := range subscriptions {
		wp.sendNotification(ctx, sub, payload)
	}
}

// sendNotification sends a single web push notification.
func (wp *WorkerPool) sendNotification(ctx context.Context, sub model.PushSubscription, payload []byte) {
	// Manually construct the webpush.Subscription object
	wpSub := &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256DH,
			Auth:   sub.Auth,
		},
	}

	resp, err := wp.sender.Send(payload, wpSub, wp.webpush)
	if err != nil {
		log.Printf("Error sending notification to %s: %v", sub.Endpoint, err)
		return
	}
	defer resp.Body.Close()

	// Handle expired subscriptions
	if resp.StatusCode == http.StatusGone {
		log.Printf("Subscription for endpoint %s is expired. Deleting.", sub.Endpoint)
		if err := wp.store.DeleteSubscription(ctx, sub.Endpoint); err != nil {
			log.Printf("Failed to delete expired subscription %s: %v", sub.Endpoint, err)
		}
	}
}
