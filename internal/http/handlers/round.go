package handlers

import (
	"context"
	"errors"
	"net/http"

	"rpsls/internal/game"
	"rpsls/internal/logger"
	"rpsls/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PlayRequest carries the player's pick, either as an index or a name.
type PlayRequest struct {
	Choice *int   `json:"choice"`
	Move   string `json:"move"`
}

type ChoiceView struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

type PlayResponse struct {
	ID         string     `json:"id"`
	Challenger ChoiceView `json:"challenger"`
	Opponent   ChoiceView `json:"opponent"`
	Result     string     `json:"result"`
	Winner     string     `json:"winner"`
	Verb       string     `json:"verb,omitempty"`
	Summary    string     `json:"summary"`
}

func choiceView(c game.Choice) ChoiceView {
	return ChoiceView{Index: c.Index(), Name: c.String()}
}

func (req PlayRequest) challenger() (game.Choice, error) {
	if req.Move != "" {
		return game.ParseChoice(req.Move)
	}
	if req.Choice != nil {
		return game.FromIndex(*req.Choice)
	}
	return 0, errors.New("choice or move is required")
}

// Play resolves one round against the robot
func (h *Handler) Play(c *gin.Context) {
	var req PlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	challenger, err := req.challenger()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	round, err := game.Play(challenger, h.Source, h.OpponentRange)
	if err != nil {
		logger.Error("round failed", "error", err, "opponent_range", h.OpponentRange.String())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "opponent selection failed"})
		return
	}

	result := round.Outcome.Result()
	RoundsPlayed.WithLabelValues(string(result)).Inc()

	ctx := context.WithValue(c.Request.Context(), logger.RoundIDKey{}, round.ID)
	logger.WithContext(ctx).Info("round played",
		"challenger", round.Challenger.String(),
		"opponent", round.Opponent.String(),
		"result", string(result),
	)

	go h.RecordRound(round, c.ClientIP())

	c.JSON(http.StatusOK, PlayResponse{
		ID:         round.ID,
		Challenger: choiceView(round.Challenger),
		Opponent:   choiceView(round.Opponent),
		Result:     string(result),
		Winner:     round.Outcome.Winner.String(),
		Verb:       round.Outcome.Verb,
		Summary:    round.Summary(),
	})
}

// Info returns the choices and the rules
func (h *Handler) Info(c *gin.Context) {
	choices := make([]gin.H, 0, 5)
	for _, ch := range game.Choices() {
		beats := make([]gin.H, 0, 2)
		for _, w := range ch.WinRelation() {
			beats = append(beats, gin.H{"choice": w.Loser.String(), "verb": w.Verb})
		}
		choices = append(choices, gin.H{
			"index": ch.Index(),
			"name":  ch.String(),
			"beats": beats,
		})
	}

	opponent := make([]string, 0, 5)
	for i := h.OpponentRange.Min; i < h.OpponentRange.Max; i++ {
		if ch, err := game.FromIndex(i); err == nil {
			opponent = append(opponent, ch.String())
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"choices":          choices,
		"opponent_choices": opponent,
		"history_enabled":  h.Rounds != nil,
	})
}

// GetRound returns a recorded round by id
func (h *Handler) GetRound(c *gin.Context) {
	if h.Rounds == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "round history is disabled"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid round id"})
		return
	}

	rec, err := h.Rounds.GetByID(c.Request.Context(), id.String())
	if err != nil {
		if errors.Is(err, repository.ErrRoundNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "round not found"})
			return
		}
		logger.Error("failed to load round", "error", err, "round_id", id.String())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}

	c.JSON(http.StatusOK, rec)
}
