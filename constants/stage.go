package constants

// Stage is the canonical name for a step in a single extraction run.
type Stage string

// Stable values (these exact strings appear in logs and error payloads).
const (
	StageFetch     Stage = "FETCH"
	StageExtract   Stage = "TEXT_EXTRACT"
	StagePrompt    Stage = "PROMPT"
	StageInference Stage = "INFERENCE"
	StageRecover   Stage = "JSON_RECOVER"
	StageSyntax    Stage = "JSON_SYNTAX"
	StageSchema    Stage = "SCHEMA"
)

// RunState tracks how far a run has progressed. The success states through
// RunDone are emitted in order as each stage completes; the failure states are
// terminal, with no retry or backtracking between stages.
type RunState string

const (
	RunStarted             RunState = "STARTED"
	RunFetched             RunState = "FETCHED"
	RunTextExtracted       RunState = "TEXT_EXTRACTED"
	RunPromptBuilt         RunState = "PROMPT_BUILT"
	RunInferenceReturned   RunState = "INFERENCE_RETURNED"
	RunJSONRecovered       RunState = "JSON_RECOVERED"
	RunSyntaxValid         RunState = "SYNTAX_VALID"
	RunDone                RunState = "DONE"
	RunFetchFailed         RunState = "FETCH_FAILED"
	RunContentTypeMismatch RunState = "CONTENT_TYPE_MISMATCH"
	RunParseFailed         RunState = "PARSE_FAILED"
	RunInferenceFailed     RunState = "INFERENCE_FAILED"
	RunNoJSONFound         RunState = "NO_JSON_FOUND"
	RunJSONSyntaxInvalid   RunState = "JSON_SYNTAX_INVALID"
	RunSchemaInvalid       RunState = "SCHEMA_INVALID"
)
