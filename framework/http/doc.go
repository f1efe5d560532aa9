// Package http provides Laravel-compatible request and response helpers.
//
// # Request
//
// Request wraps *http.Request.
//
//	req := gohttp.NewRequest(r)
//
//	// Bind JSON (`json` tags) or form posts (`form` tags) into a struct
//	var payload struct {
//	    Name string `json:"name" form:"name"`
//	}
//	if err := req.Bind(&payload); err != nil { ... }
//
//	name := req.Input("name", "default")
//	req.IsJSON() // Accept: application/json OR Content-Type: application/json
//
// # Response
//
//	res := gohttp.NewResponse(w)
//
//	res.JSON(200, data)           // raw JSON with status
//	res.Success(data)             // 200 {"data": ...}
//	res.Created(data)             // 201 {"data": ...}
//	res.Error(400, "bad input")   // {"message": "bad input"}
//	res.ValidationError(errs)     // 422 {"errors": {"field": {"kind": ..., "message": ...}}}
//
// # ViewEngine
//
//	engine := gohttp.NewViewEngine(views.FS, ".html")
//	engine.View(w, "register", data)
//	engine.ViewStatus(w, http.StatusUnprocessableEntity, "register", data)
package http
