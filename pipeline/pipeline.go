package pipeline

// Pipeline runs a request through every configuration and sends one JSON
// object keyed by configuration name.
type Pipeline func(request Request) <-chan string

type Result struct {
	ConfigName string
	Data       interface{}
}

func connect(from <-chan Result, to chan<- Result) {
	go func() {
		for v := range from {
			to <- v
		}
	}()
}
