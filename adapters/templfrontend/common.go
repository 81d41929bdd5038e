package templfrontend

//go:generate templ generate

type pageData struct {
	Input  string
	Output string
	Error  string
}
