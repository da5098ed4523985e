package main

import (
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/wish/httperr"
)

// Version maps to tagged releases of the software.
var Version = "unset"

// Git stores the commit used during build.
var Git = "unset"

// PrintVersions prints the version and git information.
func PrintVersions() {
	fmt.Printf("version: %s\ngit: %s\n", Version, Git)
}

func (srv *Server) version(w http.ResponseWriter, req *http.Request, p httprouter.Params) (httperr.Success, error) {
	r := struct {
		Version string `json:"version"`
		Git     string `json:"git"`
	}{
		Version: Version,
		Git:     Git,
	}
	return httperr.JSON(r), nil
}
