package types

// ExecuteRequest invokes an arbitrary registered tool.
type ExecuteRequest struct {
	ToolID string                 `json:"tool_id" binding:"required"`
	Params map[string]interface{} `json:"params"`
}

// EvaluateRequest evaluates an expression at a point.
type EvaluateRequest struct {
	Expression string      `json:"expression" binding:"required"`
	Variable   string      `json:"variable"`
	Value      interface{} `json:"value" binding:"required"`
}

// DifferentiateRequest computes a derivative at a point.
type DifferentiateRequest struct {
	Expression string      `json:"expression" binding:"required"`
	Variable   string      `json:"variable"`
	Point      interface{} `json:"point" binding:"required"`
	Mode       string      `json:"mode"`
}

// IntegrateRequest computes a definite integral.
type IntegrateRequest struct {
	Expression string   `json:"expression" binding:"required"`
	Variable   string   `json:"variable"`
	Low        *float64 `json:"low" binding:"required"`
	High       *float64 `json:"high" binding:"required"`
}

// ContourRequest integrates an expression along a parametrized curve.
type ContourRequest struct {
	Expression string   `json:"expression" binding:"required"`
	Variable   string   `json:"variable"`
	Curve      string   `json:"curve" binding:"required"`
	Parameter  string   `json:"parameter"`
	Low        *float64 `json:"low" binding:"required"`
	High       *float64 `json:"high" binding:"required"`
	Steps      int      `json:"steps"`
}

// RootRequest runs a Newton-Raphson search from a guess.
type RootRequest struct {
	Expression string      `json:"expression" binding:"required"`
	Variable   string      `json:"variable"`
	Guess      interface{} `json:"guess" binding:"required"`
}
