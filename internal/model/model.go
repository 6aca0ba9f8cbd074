// Package model contains data structures for the launch parameters, validation results and DTO of the node
package model

type OutputFormat string

const (
	FormatText = OutputFormat("text")
	FormatJSON = OutputFormat("json")
)

// Invocation - параметры одного запуска валидатора, заполняются один раз при старте
type Invocation struct {
	Pattern    string       // регулярка, всегда применяется без учета регистра
	OutputFile string       // путь к проверяемому файлу, "-" означает stdin
	Format     OutputFormat // формат вывода результата
	Verbose    bool         // debug-логи в stderr
}

// MatchSet - уникальные ключевые слова в верхнем регистре в порядке первого появления
type MatchSet []string

// ValidationResult - успешный результат валидации; неуспех всегда возвращается как *ValidationError
type ValidationResult struct {
	Keywords    MatchSet `json:"keywords"`
	Fingerprint uint64   `json:"fingerprint"`
}

// ValidateRequest - тело POST /validate; пустой паттерн допустим, как и в CLI
type ValidateRequest struct {
	Pattern string `json:"pattern"`
	Content string `json:"content"`
}

// ValidateResponse - ответ ноды на POST /validate
type ValidateResponse struct {
	RequestID   string   `json:"request_id"`
	Valid       bool     `json:"valid"`
	Keywords    MatchSet `json:"keywords,omitempty"`
	Fingerprint uint64   `json:"fingerprint,omitempty"`
	Kind        string   `json:"kind,omitempty"`
	Error       string   `json:"error,omitempty"`
}
