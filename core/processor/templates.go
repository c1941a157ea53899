package processor

// Response heads and pages. Heads are fmt templates; Head200 and Head200Gzip take
// the content type and the serialized cookie header.
const (
	Head200 = "HTTP/1.1 200 OK\r\n" +
		"Content-Type: %s%s\r\n\r\n"

	Head200Gzip = "HTTP/1.1 200 OK\r\n" +
		"Content-Type: %s%s\r\n" +
		"Content-Encoding: gzip\r\n\r\n"

	Head404 = "HTTP/1.1 404 Not Found\r\n" +
		"Content-Type: text/html\r\n\r\n"

	Head500 = "HTTP/1.1 500 Internal Server Error\r\n" +
		"Content-Type: text/html\r\n\r\n"
)

const pageStyle = "<style>" +
	"h1{font-family:Tahoma,Arial,sans-serif;color:white;background-color:#525D76;font-size:22px;}" +
	"h3{font-family:Tahoma,Arial,sans-serif;color:white;background-color:#525D76;font-size:14px;}" +
	"body{font-family:Tahoma,Arial,sans-serif;color:black;background-color:white;}" +
	"b{font-family:Tahoma,Arial,sans-serif;color:white;background-color:#525D76;}" +
	"p{font-family:Tahoma,Arial,sans-serif;background:white;color:black;font-size:12px;}" +
	"pre{font-size:12px;}" +
	"</style>"

// NotFoundPage takes the requested path twice. Execute HTML-escapes the path
// before interpolating it, so paths containing ', ", &, < or > differ from the
// raw template output.
const NotFoundPage = "<html><head><title>Minicat - Error report</title>" + pageStyle + "</head><body>" +
	"<h1>HTTP Status 404 - %s</h1>" +
	"<hr size='1' noshade='noshade'>" +
	"<p><b>type</b> Status report</p>" +
	"<p><b>message</b> <u>%s</u></p>" +
	"<p><b>description</b> <u>The requested resource is not available.</u></p>" +
	"<hr size='1' noshade='noshade'><h3>Minicat</h3>" +
	"</body></html>"

// ErrorPage takes the truncated error message, the error string, and the stack trace.
// Execute HTML-escapes all three, so text containing ', ", &, < or > differs
// from the raw template output.
const ErrorPage = "<html><head><title>Minicat - Error report</title>" + pageStyle + "</head><body>" +
	"<h1>HTTP Status 500 - An exception occurred processing %s</h1>" +
	"<hr size='1' noshade='noshade'>" +
	"<p><b>type</b> Exception report</p>" +
	"<p><b>message</b> <u>An exception occurred processing %s</u></p>" +
	"<p><b>description</b> <u>The server encountered an internal error that prevented it from fulfilling this request.</u></p>" +
	"<p>Stacktrace:</p>" +
	"<pre>%s</pre>" +
	"<hr size='1' noshade='noshade'><h3>Minicat</h3>" +
	"</body></html>"
