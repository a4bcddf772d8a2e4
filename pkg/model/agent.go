package model

const AgentMessageStart = "START_LEETCODE_AGENT"

type SolveProblemReq struct {
	Type string `json:"type" binding:"required"`
	URL  string `json:"url"`
	HTML string `json:"html"`
}

type SolveProblemRes struct {
	Problem  string `json:"problem"`
	Solution string `json:"solution"`
}

type EvaluationRes struct {
	Score       int    `json:"score"`
	Explanation string `json:"explanation"`
}
