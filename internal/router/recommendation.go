package router

// Model is one of the four chat model variants the router can recommend.
type Model string

const (
	ModelGPT4o  Model = "GPT-4o"  // voice/multimodal
	ModelO3     Model = "o3"      // deep reasoning
	ModelGPT41  Model = "GPT-4.1" // direct coding executor
	ModelO4Mini Model = "o4-mini" // fast iterations
)

// Recommendation is the result of classifying one prompt. Created fresh on
// every call, never stored.
type Recommendation struct {
	Model        Model  `json:"model"`
	Reason       string `json:"reason"`
	Alternatives string `json:"alternatives"`
}
