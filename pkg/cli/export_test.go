package cli

var RunHTTPServer = runHTTPServer
