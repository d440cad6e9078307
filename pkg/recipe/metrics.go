package recipe

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recipeViewsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipebook_recipe_views_total",
			Help: "Total number of recipe detail page views",
		},
	)
	recipesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipebook_recipes_created_total",
			Help: "Total number of recipes created",
		},
	)
	recipeConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipebook_recipe_conflicts_total",
			Help: "Total number of recipe creations rejected because the name already exists",
		},
	)
)
