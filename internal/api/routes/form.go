package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/form-console/internal/api/handlers"
)

// FormRoutes registers form and question endpoints
func FormRoutes(rg *gin.RouterGroup, forms *handlers.FormHandler, questions *handlers.QuestionHandler) {
	f := rg.Group("/forms")
	{
		f.GET("", forms.ListForms)
		f.POST("", forms.CreateForm)
		f.GET("/:id", forms.GetForm)
		f.PUT("/:id", forms.UpdateForm)
		f.DELETE("/:id", forms.DeleteForm)
		f.GET("/:id/questions", questions.ListQuestions)
		f.POST("/:id/questions", questions.AddQuestion)
	}

	q := rg.Group("/questions")
	{
		q.PUT("/:id", questions.UpdateQuestion)
		q.DELETE("/:id", questions.DeleteQuestion)
	}
}
