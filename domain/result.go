package domain

type TokenResult struct {
	Token   string `json:"token"`
	Success bool   `json:"success"`
	Err     string `json:"error,omitempty"`
}

type SendResult struct {
	SuccessCount int           `json:"successCount"`
	FailureCount int           `json:"failureCount"`
	Results      []TokenResult `json:"results"`
}

func (r *SendResult) Add(token string, err error) {
	if err == nil {
		r.SuccessCount++
		r.Results = append(r.Results, TokenResult{Token: token, Success: true})
	} else {
		r.FailureCount++
		r.Results = append(r.Results, TokenResult{Token: token, Err: err.Error()})
	}
}

func (r SendResult) FailedTokens() []string {
	var failed []string
	for _, res := range r.Results {
		if !res.Success {
			failed = append(failed, res.Token)
		}
	}
	return failed
}
