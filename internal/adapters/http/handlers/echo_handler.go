package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todo-lists-service/internal/adapters/http/dto"
)

// Echo handles GET /echo?message=..&name=.. and replies "<message> <name>!".
func Echo(w http.ResponseWriter, r *http.Request) {
	q, err := dto.ParseEchoQuery(r.URL.Query())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewEchoResponse(&q))
}
