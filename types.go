package legalpages

// Input contains conversion parameters for a single document.
type Input struct {
	Markdown string // raw document text (may be empty)
	Title    string // display title supplied by the driver's source table
}

// Option configures a Service.
type Option func(*Service)

// WithShellTemplate overrides the embedded page shell template source.
// Panics if the source does not parse (programmer error, same contract
// as template.Must).
func WithShellTemplate(source string) Option {
	return func(s *Service) {
		s.shell = newShellRenderingFromSource(source)
	}
}
