package model

import (
	"github.com/jsphweid/pcset/mode"
	"github.com/jsphweid/pcset/pcset"
)

type RelationRequestBody struct {
	// one of subset, superset, equal, includes
	Op        string `json:"op"`
	Reference string `json:"reference"`
	Candidate string `json:"candidate"`
}

type RelationResponse struct {
	Op     string `json:"op"`
	Result bool   `json:"result"`
}

type FilterRequestBody struct {
	Reference string   `json:"reference"`
	Notes     []string `json:"notes"`
}

type FilterResponse struct {
	Notes []string `json:"notes"`
}

type ModesResponse struct {
	Input pcset.PcSet `json:"input"`
	Modes []string    `json:"modes"`
}

type ModeResponse struct {
	Mode          mode.Mode `json:"mode"`
	Notes         []string  `json:"notes,omitempty"`
	Triads        []string  `json:"triads,omitempty"`
	SeventhChords []string  `json:"seventhChords,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
