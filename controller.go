package authclient

import (
	"context"
	"sync"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-print"
)

// FlowState is the submission state of the auth flow.
type FlowState string

const (
	FlowIdle       FlowState = "idle"
	FlowSubmitting FlowState = "submitting"
	FlowSucceeded  FlowState = "succeeded"
	FlowFailed     FlowState = "failed"
)

// flowTransitions is the allowed state graph. Submitting is re-enterable
// from every settled state so the same controller serves login, logout and
// re-login within one process.
var flowTransitions = map[FlowState]map[FlowState]struct{}{
	FlowIdle: {
		FlowSubmitting: {},
	},
	FlowSubmitting: {
		FlowSucceeded: {},
		FlowFailed:    {},
	},
	FlowSucceeded: {
		FlowSubmitting: {},
		FlowIdle:       {},
	},
	FlowFailed: {
		FlowSubmitting: {},
		FlowIdle:       {},
	},
}

// SessionController owns sign-in and sign-up submission and is the sole
// writer of the credential store. It writes the store only after a
// successful decode, so the recorded role can never diverge from the token.
type SessionController struct {
	service      AuthService
	store        CredentialStore
	decoder      TokenDecoder
	navigator    Navigator
	logger       Logger
	activitySink ActivitySink
	now          func() time.Time

	mu    sync.Mutex
	state FlowState
}

// NewSessionController returns a controller in the Idle state.
func NewSessionController(service AuthService, store CredentialStore) *SessionController {
	return &SessionController{
		service:      service,
		store:        store,
		decoder:      TokenDecoderFunc(DecodeCredential),
		navigator:    noopNavigator{},
		logger:       defLogger{},
		activitySink: noopActivitySink{},
		now:          time.Now,
		state:        FlowIdle,
	}
}

func (c *SessionController) WithLogger(logger Logger) *SessionController {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// WithNavigator configures the navigation surface the controller drives
// after a successful login or resume.
func (c *SessionController) WithNavigator(navigator Navigator) *SessionController {
	c.navigator = normalizeNavigator(navigator)
	return c
}

// WithActivitySink configures an ActivitySink for emitting session events.
func (c *SessionController) WithActivitySink(sink ActivitySink) *SessionController {
	c.activitySink = normalizeActivitySink(sink)
	return c
}

// WithTokenDecoder sets a custom decoder for non-standard credentials.
func (c *SessionController) WithTokenDecoder(decoder TokenDecoder) *SessionController {
	if decoder != nil {
		c.decoder = decoder
	}
	return c
}

// State returns the current flow state.
func (c *SessionController) State() FlowState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SignUp forwards the registration data to the remote service. No session is
// created on success; the caller switches the form to sign-in mode.
func (c *SessionController) SignUp(ctx context.Context, data RegistrationData) error {
	if err := data.Validate(); err != nil {
		return err
	}

	if err := c.begin(); err != nil {
		return err
	}

	if err := c.service.Register(ctx, data); err != nil {
		c.settle(FlowFailed)
		c.logRejection("sign up failed", err)
		c.emit(ctx, ActivityEventRegisterFailure, "", map[string]any{
			"email": data.Email,
			"error": err.Error(),
		})
		return err
	}

	c.settle(FlowSucceeded)
	c.emit(ctx, ActivityEventRegisterSuccess, "", map[string]any{
		"email": data.Email,
	})

	return nil
}

// SignIn exchanges credentials for a bearer token, decodes it, records the
// session and reports the destination. A token that fails to decode is
// treated exactly like a remote rejection: the store is left untouched.
func (c *SessionController) SignIn(ctx context.Context, email, password string) (Destination, error) {
	if err := validateSignIn(email, password); err != nil {
		return DestinationEntry, err
	}

	if err := c.begin(); err != nil {
		return DestinationEntry, err
	}

	token, err := c.service.Login(ctx, email, password)
	if err != nil {
		c.settle(FlowFailed)
		c.logRejection("sign in failed", err)
		c.emit(ctx, ActivityEventLoginFailure, "", map[string]any{
			"email": email,
			"error": err.Error(),
		})
		return DestinationEntry, err
	}

	claims, err := c.decoder.Decode(token)
	if err != nil {
		c.settle(FlowFailed)
		c.logger.Error("issued credential failed to decode", "error", err)
		c.emit(ctx, ActivityEventLoginFailure, "", map[string]any{
			"email": email,
			"error": err.Error(),
		})
		return DestinationEntry, err
	}

	if err := c.store.Set(ctx, token, claims.Role()); err != nil {
		c.settle(FlowFailed)
		c.logger.Error("failed to record session", "error", err)
		return DestinationEntry, err
	}

	c.settle(FlowSucceeded)
	c.emit(ctx, ActivityEventLoginSuccess, claims.SubjectID(), map[string]any{
		"role": string(claims.Role()),
	})

	// Store write above happens-before this navigation.
	destination := claims.Role().Destination()
	c.navigator.Navigate(destination)

	return destination, nil
}

// Resume reproduces the "already logged in" redirect: a stored credential
// whose claims still decode short-circuits to the role destination without a
// network call. A stored credential that no longer decodes is dropped.
func (c *SessionController) Resume(ctx context.Context) (Destination, bool) {
	credential, ok := c.store.Get(ctx)
	if !ok {
		return DestinationEntry, false
	}

	claims, err := c.decoder.Decode(credential)
	if err != nil {
		c.logger.Warn("stored credential failed to decode, dropping session", "error", err)
		if clearErr := c.store.Clear(ctx); clearErr != nil {
			c.logger.Error("failed to drop stale session", "error", clearErr)
		}
		c.emit(ctx, ActivityEventSessionDropped, "", map[string]any{
			"error": err.Error(),
		})
		return DestinationEntry, false
	}

	destination := claims.Role().Destination()
	c.emit(ctx, ActivityEventSessionResumed, claims.SubjectID(), map[string]any{
		"role": string(claims.Role()),
	})
	c.navigator.Navigate(destination)

	return destination, true
}

// Logout clears the credential store and returns to the entry point. Safe to
// invoke from any state, including when no session exists.
func (c *SessionController) Logout(ctx context.Context) error {
	if err := c.store.Clear(ctx); err != nil {
		c.logger.Error("failed to clear session", "error", err)
		return err
	}

	c.mu.Lock()
	if c.state != FlowSubmitting {
		c.state = FlowIdle
	}
	c.mu.Unlock()

	c.emit(ctx, ActivityEventLogout, "", nil)
	c.navigator.Navigate(DestinationEntry)

	return nil
}

// begin moves the flow into Submitting, rejecting re-entrant submissions so
// a second concurrent call can never race the first into a store write.
func (c *SessionController) begin() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := flowTransitions[c.state][FlowSubmitting]; !ok {
		return ErrSubmissionInFlight
	}

	c.state = FlowSubmitting
	return nil
}

func (c *SessionController) settle(to FlowState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = to
}

func (c *SessionController) emit(ctx context.Context, eventType ActivityEventType, subjectID string, metadata map[string]any) {
	sink := normalizeActivitySink(c.activitySink)
	event := ActivityEvent{
		EventType:  eventType,
		SubjectID:  subjectID,
		Metadata:   metadata,
		OccurredAt: c.now(),
	}

	if event.Metadata == nil {
		event.Metadata = map[string]any{}
	}

	if err := sink.Record(ctx, event); err != nil {
		c.logger.Warn("activity sink record error: %v", err)
	}
}

func (c *SessionController) logRejection(msg string, err error) {
	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) {
		c.logger.Error(msg, "error", richErr.Message, "details", print.MaybePrettyJSON(richErr.Metadata))
		return
	}
	c.logger.Error(msg, "error", err)
}

func validateSignIn(email, password string) error {
	return validation.Errors{
		"email":    validation.Validate(email, validation.Required, is.Email),
		"password": validation.Validate(password, validation.Required),
	}.Filter()
}
