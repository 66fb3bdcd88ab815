package runtime

import (
	"context"
	"log/slog"
	"roomchat/contract"
	"roomchat/domain"
	"roomchat/errors"
	"roomchat/observability"
	"time"
)

// Router delivers lines to one client, one room, or a whisper target.
//
// Delivery is best-effort and synchronous: recipients are resolved to a
// snapshot under the directory and registry locks, the locks are released,
// then each sink is written in turn with its own timeout. A failing sink is
// logged and skipped.
type Router struct {
	log         *slog.Logger
	sessions    *SessionRegistry
	rooms       *RoomDirectory
	monitoring  *observability.MonitoringManager
	censor      contract.Censor
	sinkTimeout time.Duration
}

func NewRouter(log *slog.Logger, sessions *SessionRegistry, rooms *RoomDirectory,
	monitoring *observability.MonitoringManager, sinkTimeout time.Duration) *Router {
	return &Router{
		log:         log,
		sessions:    sessions,
		rooms:       rooms,
		monitoring:  monitoring,
		sinkTimeout: sinkTimeout,
	}
}

// WithCensor enables moderation of room broadcasts.
func (r *Router) WithCensor(censor contract.Censor) *Router {
	r.censor = censor
	return r
}

// BroadcastToRoom sends "<sender> : <text>" to every member of the sender's
// room, the sender included. A roomless sender's message is dropped.
func (r *Router) BroadcastToRoom(ctx context.Context, sender, text string) {
	roomID, ok := r.rooms.CurrentRoom(sender)
	if !ok {
		r.log.Debug("Dropping message from roomless sender", "nickname", sender)
		return
	}
	if r.censor != nil {
		censored, words := r.censor.Censor(text)
		if len(words) > 0 {
			r.log.Info("Message censored", "nickname", sender, "room_id", roomID, "words", len(words))
			r.monitoring.AddCensoredWords(len(words))
		}
		text = censored
	}
	r.deliverAll(ctx, observability.KindBroadcast, r.rooms.Recipients(roomID, ""), domain.ChatLine(sender, text))
}

// Whisper sends a tagged private line to target. When target is unknown the
// failure is logged here and returned to the caller; the sender's client is
// never told.
func (r *Router) Whisper(ctx context.Context, sender, target, text string) error {
	sink, ok := r.sessions.Lookup(target)
	if !ok {
		r.log.Warn("Whisper target not found", "nickname", sender, "target", target)
		r.monitoring.IncrDeliveryFailure(observability.KindWhisper)
		return errors.ErrRecipientOffline
	}
	return r.deliver(ctx, observability.KindWhisper, contract.Recipient{Nickname: target, Sink: sink}, domain.WhisperLine(sender, text))
}

// NotifyRoom sends text to the current members of roomID except exclude.
func (r *Router) NotifyRoom(ctx context.Context, roomID domain.RoomID, text, exclude string) {
	r.deliverAll(ctx, observability.KindNotify, r.rooms.Recipients(roomID, exclude), text)
}

// SystemNotice sends text to nickname only.
func (r *Router) SystemNotice(ctx context.Context, nickname, text string) error {
	sink, ok := r.sessions.Lookup(nickname)
	if !ok {
		return errors.ErrRecipientOffline
	}
	return r.deliver(ctx, observability.KindSystem, contract.Recipient{Nickname: nickname, Sink: sink}, text)
}

// Announce broadcasts text to the sender's room, if any. It is what a new
// arrival calls right after registration, when it has no room yet, so in
// practice it reaches nobody.
func (r *Router) Announce(ctx context.Context, sender, text string) {
	roomID, ok := r.rooms.CurrentRoom(sender)
	if !ok {
		return
	}
	r.NotifyRoom(ctx, roomID, text, "")
}

func (r *Router) deliverAll(ctx context.Context, kind string, recipients []contract.Recipient, line string) {
	for _, recipient := range recipients {
		_ = r.deliver(ctx, kind, recipient, line)
	}
}

func (r *Router) deliver(ctx context.Context, kind string, recipient contract.Recipient, line string) error {
	sendCtx := ctx
	if r.sinkTimeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, r.sinkTimeout)
		defer cancel()
	}
	if err := recipient.Sink.Send(sendCtx, line); err != nil {
		r.log.Warn("Delivery failed", "kind", kind, "nickname", recipient.Nickname, "error", err)
		r.monitoring.IncrDeliveryFailure(kind)
		return err
	}
	r.monitoring.IncrDelivered(kind)
	return nil
}
