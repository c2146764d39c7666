package handlers

import (
	"fmt"
	"html"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/colorpick/internal/middleware"
)

// Index serves the explorer page. All state is fetched by the page script.
func (s *Server) Index(c *gin.Context) {
	page := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<meta name="csrf-token" content="%s">
	<title>colorpick</title>
	<style>%s</style>
	<link id="stage-css" rel="stylesheet" href="/stage.css">
</head>
<body>
<div class="layout">
	<section class="panel">
		<h1 id="theme-name">colorpick</h1>
		<form class="generate-form" id="generate-form">
			<input id="keyword" name="keyword" placeholder="sunset, moss, neon arcade..." autocomplete="off">
			<button class="primary" id="generate" type="submit">Generate</button>
		</form>
		<div id="status"></div>
		<div id="swatches"></div>
		<button id="show-more" hidden>Show more</button>
	</section>
	<section class="panel">
		<div id="stage" class="stage"></div>
		<div id="selection"></div>
		<div>
			<small>Background:</small>
			<select id="background"></select>
		</div>
	</section>
	<section class="panel">
		<h2>Collections</h2>
		<form class="generate-form" id="collection-form">
			<input id="collection-name" placeholder="New collection">
			<button type="submit">Create</button>
		</form>
		<div id="collections"></div>
	</section>
</div>
<script>%s</script>
</body>
</html>`, html.EscapeString(middleware.GetCSRFToken(c)), GetDesignSystemCSS(), pageScript)

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}
