package api

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/dpereira/travel-assistant/internal/authgate"
	"github.com/dpereira/travel-assistant/internal/compose"
	"github.com/dpereira/travel-assistant/internal/domain/trip"
	"github.com/dpereira/travel-assistant/internal/estimate"
	"github.com/dpereira/travel-assistant/internal/export"
	"github.com/dpereira/travel-assistant/internal/wizard"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// sessionView is the wizard state returned to the client.
type sessionView struct {
	ID          string        `json:"id"`
	CurrentStep string        `json:"current_step"`
	StepNumber  int           `json:"step_number"`
	TotalSteps  int           `json:"total_steps"`
	Progress    int           `json:"progress"`
	Completed   bool          `json:"step_completed"`
	Steps       []string      `json:"steps"`
	Trip        *trip.Request `json:"trip"`
}

func viewOf(s *Session) sessionView {
	seq := s.Wizard.EffectiveSequence()
	steps := make([]string, len(seq))
	for i, st := range seq {
		steps[i] = st.String()
	}
	return sessionView{
		ID:          s.ID,
		CurrentStep: s.Wizard.Current().String(),
		StepNumber:  s.Wizard.StepNumber(),
		TotalSteps:  s.Wizard.TotalSteps(),
		Progress:    s.Wizard.Progress(),
		Completed:   s.Wizard.Completed(s.Wizard.Current()),
		Steps:       steps,
		Trip:        s.Req,
	}
}

func (s *Server) session(c *gin.Context) (*Session, bool) {
	sess, ok := s.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return nil, false
	}
	return sess, true
}

// handleCreateSession starts a fresh request, rehydrating the persisted
// traveler profile into it. Trip-specific fields always start empty.
func (s *Server) handleCreateSession(c *gin.Context) {
	req := trip.NewRequest()

	profile, err := s.profileRepo.Load(c.Request.Context())
	if err != nil {
		s.logger.Warn("Could not rehydrate traveler profile", zap.Error(err))
	} else if profile != nil {
		req.Traveler = *profile
	}

	sess := s.sessions.Create(req)
	c.JSON(http.StatusCreated, viewOf(sess))
}

// handleDeleteSession discards an in-progress request. The traveler
// profile row is untouched; only the session state goes away.
func (s *Server) handleDeleteSession(c *gin.Context) {
	if _, ok := s.sessions.Get(c.Param("id")); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	s.sessions.Delete(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (s *Server) handleGetSession(c *gin.Context) {
	sess, ok := s.session(c)
	if !ok {
		return
	}
	var view sessionView
	sess.withLock(func() { view = viewOf(sess) })
	c.JSON(http.StatusOK, view)
}

// handleUpdateTrip applies a partial trip edit. Traveler edits are
// persisted so future sessions rehydrate them; any edit discards a
// hand-edited preview body.
func (s *Server) handleUpdateTrip(c *gin.Context) {
	sess, ok := s.session(c)
	if !ok {
		return
	}

	var update TripUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var applyErr error
	var traveler trip.Traveler
	sess.withLock(func() {
		applyErr = update.apply(sess.Req)
		if applyErr == nil {
			sess.hasEditedBody = false
			sess.editedBody = ""
			traveler = sess.Req.Traveler
		}
	})
	if applyErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": applyErr.Error()})
		return
	}

	if update.Traveler != nil {
		if err := s.profileRepo.Save(c.Request.Context(), traveler); err != nil {
			s.logger.Warn("Could not persist traveler profile", zap.Error(err))
		}
	}

	var view sessionView
	sess.withLock(func() { view = viewOf(sess) })
	c.JSON(http.StatusOK, view)
}

func (s *Server) handleNext(c *gin.Context) {
	sess, ok := s.session(c)
	if !ok {
		return
	}
	var view sessionView
	sess.withLock(func() {
		sess.Wizard.Next(c.Request.Context())
		view = viewOf(sess)
	})
	c.JSON(http.StatusOK, view)
}

func (s *Server) handlePrevious(c *gin.Context) {
	sess, ok := s.session(c)
	if !ok {
		return
	}
	var view sessionView
	sess.withLock(func() {
		sess.Wizard.Previous(c.Request.Context())
		view = viewOf(sess)
	})
	c.JSON(http.StatusOK, view)
}

func (s *Server) handleGoTo(c *gin.Context) {
	sess, ok := s.session(c)
	if !ok {
		return
	}

	var body struct {
		Step string `json:"step" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var gotoErr error
	var view sessionView
	sess.withLock(func() {
		gotoErr = sess.Wizard.GoTo(wizard.Step(body.Step))
		view = viewOf(sess)
	})
	if gotoErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gotoErr.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// handlePreview returns the cost breakdown and the composed email. The
// body is the user's edited text when one exists, otherwise a fresh
// composition.
func (s *Server) handlePreview(c *gin.Context) {
	sess, ok := s.session(c)
	if !ok {
		return
	}

	var breakdown estimate.Breakdown
	var draft compose.Draft
	var edited bool
	sess.withLock(func() {
		breakdown = estimate.Estimate(sess.Req, s.rates)
		draft = compose.Compose(sess.Req, breakdown, s.rates)
		if sess.hasEditedBody {
			draft.Body = sess.editedBody
			edited = true
		}
	})

	c.JSON(http.StatusOK, gin.H{
		"breakdown": breakdown,
		"draft":     draft,
		"edited":    edited,
	})
}

func (s *Server) handleEditPreview(c *gin.Context) {
	sess, ok := s.session(c)
	if !ok {
		return
	}

	var body struct {
		Body string `json:"body"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess.withLock(func() {
		sess.editedBody = body.Body
		sess.hasEditedBody = true
	})
	c.JSON(http.StatusOK, gin.H{"edited": true})
}

// handleMailto returns the mailto URI for whatever text the preview
// currently holds, not necessarily a regeneration.
func (s *Server) handleMailto(c *gin.Context) {
	sess, ok := s.session(c)
	if !ok {
		return
	}

	var url string
	sess.withLock(func() {
		body := sess.editedBody
		if !sess.hasEditedBody {
			breakdown := estimate.Estimate(sess.Req, s.rates)
			body = compose.Compose(sess.Req, breakdown, s.rates).Body
		}
		url = compose.MailtoURL(compose.Subject, body)
	})
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// handleExport runs the spreadsheet pipeline. A second invocation while
// one is in flight is rejected rather than cancelled.
func (s *Server) handleExport(c *gin.Context) {
	sess, ok := s.session(c)
	if !ok {
		return
	}

	if !sess.tryBeginExport() {
		c.JSON(http.StatusConflict, gin.H{"error": export.ErrExportInFlight.Error()})
		return
	}
	defer sess.endExport()

	// Snapshot under the lock; the filler must not see a request that a
	// concurrent edit is mutating. Request holds no reference types, so
	// the value copy is a full copy.
	var snapshot trip.Request
	sess.withLock(func() { snapshot = *sess.Req })

	path, err := s.filler.Export(c.Request.Context(), &snapshot)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.FileAttachment(path, filepath.Base(path))
}

func (s *Server) handleGateStatus(c *gin.Context) {
	result, err := s.gate.Status(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleGateSubmit(c *gin.Context) {
	var body struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.gate.Submit(c.Request.Context(), body.Code)
	if err != nil {
		if errors.Is(err, authgate.ErrMalformedCode) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleNotifications(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	records, err := s.notifRepo.Recent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": records})
}
