package telegram

import (
	"log/slog"
	"strings"
	"time"

	"github.com/alisha/dialect/core/catalog"
	"github.com/alisha/dialect/core/dialog"
	"github.com/alisha/dialect/core/logger"
	"github.com/alisha/dialect/core/session"
	tghelpers "github.com/alisha/dialect/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

const replyStoreFailure = "Sorry, something went wrong. Please try again in a moment."

// DialogHandler turns incoming text messages into dialog replies. It is
// the only message route: every text goes through classify and respond
// against the sender's stored session.
type DialogHandler struct {
	Catalog *catalog.Catalog
	Store   session.Store
	locks   *session.KeyedLock
}

// NewDialogHandler builds the handler over an immutable catalog and a
// session store.
func NewDialogHandler(cat *catalog.Catalog, store session.Store) *DialogHandler {
	return &DialogHandler{
		Catalog: cat,
		Store:   store,
		locks:   session.NewKeyedLock(),
	}
}

// OnText is the telebot handler for incoming text messages.
func (h *DialogHandler) OnText(c tele.Context) error {
	ctx := tghelpers.WithHandler(c, "dialog")
	senderID := tghelpers.SenderID(c)
	if senderID == "" {
		logger.Warn(ctx, "dialog", "message.no_sender")
		return nil
	}
	msg := c.Text()

	// Messages from the same sender are handled strictly one at a time;
	// the session read-modify-write cycle is not safe to interleave.
	unlock := h.locks.Lock(senderID)
	defer unlock()

	start := time.Now()

	sess, err := h.Store.Get(ctx, senderID)
	if err != nil {
		logger.Error(ctx, "dialog", "session.load_failed",
			slog.String("sender_id", senderID),
			slog.String("err", err.Error()),
		)
		return tghelpers.SendText(c, replyStoreFailure)
	}

	res := dialog.Classify(msg, h.Catalog, sess)
	reply, next := dialog.Respond(res, msg, h.Catalog, sess)

	if err := h.Store.Put(ctx, senderID, next); err != nil {
		logger.Error(ctx, "dialog", "session.save_failed",
			slog.String("sender_id", senderID),
			slog.String("err", err.Error()),
		)
		return tghelpers.SendText(c, replyStoreFailure)
	}

	logger.Info(ctx, "dialog", "message.handled",
		slog.String("status", "ok"),
		slog.String("sender_id", senderID),
		slog.String("intent", res.Intent.String()),
		slog.Int("quiz_index", next.QuizIndex),
		slog.Int("reply_len", len(reply)),
		slog.Duration("duration", logger.Took(start)),
	)

	// A few flows intentionally produce no reply; sending an empty
	// message would be rejected by the API.
	if strings.TrimSpace(reply) == "" {
		return nil
	}
	return tghelpers.SendText(c, reply)
}
