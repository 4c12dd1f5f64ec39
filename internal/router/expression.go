package router

import (
	"net/http"

	"github.com/DjordjeVuckovic/logic-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/logic-hunter/internal/dto"
	"github.com/DjordjeVuckovic/logic-hunter/internal/expr"
	"github.com/DjordjeVuckovic/logic-hunter/internal/token"
	"github.com/DjordjeVuckovic/logic-hunter/internal/truthtable"
	"github.com/labstack/echo/v4"
)

type ExpressionRouter struct {
	e *echo.Echo
}

func NewExpressionRouter(e *echo.Echo) *ExpressionRouter {
	return &ExpressionRouter{
		e: e,
	}
}

func (r *ExpressionRouter) Bind() {
	g := r.e.Group("/api/v1")
	g.GET("/palette", r.paletteHandler)
	g.POST("/tokenize", r.tokenizeHandler)
	g.POST("/evaluate", r.evaluateHandler)
	g.POST("/table", r.tableHandler)
}

// @Summary Token palette
// @Description The full closed vocabulary, in display order, for building pickers.
// @Tags expressions
// @Produce json
// @Success 200 {object} dto.PaletteResponse
// @Router /api/v1/palette [get]
func (r *ExpressionRouter) paletteHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.PaletteResponse{Tokens: token.Palette()})
}

// @Summary Tokenize display syntax
// @Tags expressions
// @Accept json
// @Produce json
// @Param request body dto.TokenizeRequest true "expression in display syntax"
// @Success 200 {object} dto.TokenizeResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/tokenize [post]
func (r *ExpressionRouter) tokenizeHandler(c echo.Context) error {
	var req dto.TokenizeRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	tokens, err := token.Tokenize(req.Expression)
	if err != nil {
		return apperr.NewValidationWrap("cannot tokenize expression", err)
	}

	return c.JSON(http.StatusOK, dto.TokenizeResponse{Tokens: tokens})
}

// @Summary Evaluate an expression
// @Description Runs validate, convert and evaluate over a token sequence under the given assignment.
// @Tags expressions
// @Accept json
// @Produce json
// @Param request body dto.EvaluateRequest true "token sequence and variable assignment"
// @Success 200 {object} dto.EvaluateResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/evaluate [post]
func (r *ExpressionRouter) evaluateHandler(c echo.Context) error {
	var req dto.EvaluateRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if err := token.CheckVocabulary(req.Tokens); err != nil {
		return apperr.NewValidationWrap("invalid token sequence", err)
	}

	result, err := expr.Evaluate(req.Tokens, expr.Env(req.Vars))
	if err != nil {
		return apperr.NewValidationWrap("invalid expression", err)
	}

	return c.JSON(http.StatusOK, dto.EvaluateResponse{
		Expression: token.Render(req.Tokens),
		Result:     result,
	})
}

// @Summary Build a truth table
// @Description Enumerates every assignment of the free variables. Malformed expressions yield sentinel rows, not a 4xx.
// @Tags expressions
// @Accept json
// @Produce json
// @Param request body dto.TableRequest true "token sequence"
// @Success 200 {object} dto.TableResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/table [post]
func (r *ExpressionRouter) tableHandler(c echo.Context) error {
	var req dto.TableRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if err := token.CheckVocabulary(req.Tokens); err != nil {
		return apperr.NewValidationWrap("invalid token sequence", err)
	}

	table := truthtable.Build(req.Tokens)
	return c.JSON(http.StatusOK, dto.NewTableResponse(req.Tokens, table))
}
