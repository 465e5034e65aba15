package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/luxestay/concierge/internal/booking"
	"github.com/luxestay/concierge/internal/notify"
	"github.com/luxestay/concierge/internal/oracle"
)

// Fixed user-facing reply fragments. Failures of the satellite services
// degrade into these texts; they are never surfaced as HTTP errors.
const (
	roomOptionsApology = "I'm sorry, there was an error fetching room options. Please try again later."
	bookingApology     = "I'm sorry, there was an error while trying to book your room. Please try again or contact our support team."

	offeringsHeader     = "Here are our available room options:\n\n"
	roomSelectionPrompt = "\nWhich room would you like to book? Please let me know the room name and the number of nights you'd like to stay."

	emailFailureNote = "\n\nNote: There was an issue sending the confirmation email. Please keep this booking confirmation for your records."
)

// Service implements ChatManager. It orchestrates one chat turn: persist the
// user message, replay the session history to the completion service, dispatch
// on the returned function name, persist and return the reply.
type Service struct {
	turns    TurnStore
	oracle   oracle.Completer
	booking  booking.API
	notifier notify.Notifier
	logger   *zap.Logger
}

// NewService creates a new chat service. All collaborators are process-scoped
// singletons constructed at startup and injected here.
func NewService(turns TurnStore, completer oracle.Completer, bookingAPI booking.API, notifier notify.Notifier, logger *zap.Logger) *Service {
	return &Service{
		turns:    turns,
		oracle:   completer,
		booking:  bookingAPI,
		notifier: notifier,
		logger:   logger,
	}
}

// HandleTurn processes one inbound chat message and returns the assistant
// reply. Store and oracle failures abort the turn; the user turn persisted
// before the failure is not rolled back.
func (s *Service) HandleTurn(ctx context.Context, sessionID, message string) (string, error) {
	userTurn := &Turn{
		UUID:      uuid.New(),
		SessionID: sessionID,
		Role:      RoleUser,
		Content:   message,
		CreatedAt: time.Now(),
	}
	if err := s.turns.AppendTurn(ctx, userTurn); err != nil {
		return "", err
	}

	// Full history including the turn just appended; the directive is
	// prepended here and never stored.
	history, err := s.turns.ListTurns(ctx, sessionID)
	if err != nil {
		return "", err
	}

	transcript := make([]oracle.Message, 0, len(history)+1)
	transcript = append(transcript, oracle.Message{
		Role:    string(RoleSystem),
		Content: oracle.Directive,
	})
	for _, turn := range history {
		transcript = append(transcript, oracle.Message{
			Role:    string(turn.Role),
			Content: turn.Content,
		})
	}

	result, err := s.oracle.Complete(ctx, transcript)
	if err != nil {
		return "", NewOracleError(sessionID, err)
	}

	reply := s.dispatch(ctx, result)

	assistantTurn := &Turn{
		UUID:      uuid.New(),
		SessionID: sessionID,
		Role:      RoleAssistant,
		Content:   reply,
		CreatedAt: time.Now(),
	}
	if err := s.turns.AppendTurn(ctx, assistantTurn); err != nil {
		return "", err
	}

	return reply, nil
}

// dispatch turns an oracle result into reply text. Plain text passes through
// verbatim; the two known function names route to the booking service; an
// unknown name is logged and treated as plain text.
func (s *Service) dispatch(ctx context.Context, result *oracle.Result) string {
	if result.Kind != oracle.KindFunctionCall {
		return result.Content
	}

	switch result.Name {
	case oracle.FunctionGetRoomOptions:
		return s.listRoomOptions(ctx)
	case oracle.FunctionBookRoom:
		return s.bookRoom(ctx, result.Arguments)
	default:
		s.logger.Warn("Oracle invoked unknown function", zap.String("function", result.Name))
		return result.Content
	}
}

// listRoomOptions fetches and renders the available rooms
func (s *Service) listRoomOptions(ctx context.Context) string {
	offerings, err := s.booking.ListOfferings(ctx)
	if err != nil {
		s.logger.Error("Error fetching room options",
			zap.Error(NewUpstreamError(UpstreamOpListOfferings, err)))
		return roomOptionsApology
	}

	return offeringsHeader + booking.RenderOfferings(offerings) + roomSelectionPrompt
}

// bookRoom places the booking and sends the confirmation email
func (s *Service) bookRoom(ctx context.Context, arguments json.RawMessage) string {
	var req booking.Request
	if err := json.Unmarshal(arguments, &req); err != nil {
		s.logger.Error("Error parsing booking arguments", zap.Error(err))
		return bookingApology
	}

	result, err := s.booking.CreateBooking(ctx, req)
	if err != nil {
		s.logger.Error("Error creating booking",
			zap.Int("room_id", req.RoomID),
			zap.Error(NewUpstreamError(UpstreamOpCreateBooking, err)))
		return bookingApology
	}

	reply := formatConfirmation(req, result)

	sent := s.notifier.NotifyBooking(ctx, notify.Confirmation{
		Email:      req.Email,
		FullName:   req.FullName,
		RoomID:     req.RoomID,
		Nights:     req.Nights,
		BookingID:  result.BookingID,
		TotalPrice: result.TotalPrice,
		RoomName:   result.RoomName,
	})
	if !sent {
		s.logger.Error("Failed to send confirmation email after multiple attempts",
			zap.String("email", req.Email),
			zap.Int("booking_id", result.BookingID))
		reply += emailFailureNote
	}

	return reply
}

// formatConfirmation renders the fixed booking confirmation block
func formatConfirmation(req booking.Request, result *booking.Result) string {
	return fmt.Sprintf(`Booking Confirmation
--------------------
Booking ID: %d
Room Type: %s
Number of Nights: %d
Total Price: $%d
Full Name: %s
Email: %s

Thank you for choosing LuxeStay! A confirmation email will be sent to your provided email address.

If you need any further assistance or have any questions, please don't hesitate to ask.`,
		result.BookingID, result.RoomName, req.Nights, result.TotalPrice, req.FullName, req.Email)
}
