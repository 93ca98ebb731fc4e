package rest

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the forum endpoints. Everything but reading a thread requires auth.
func RegisterRoutes(route gin.IRouter, auth gin.HandlerFunc, threads *ThreadHandler, comments *commentHandler, replies *replyHandler) {
	route.GET("/threads/:threadId", threads.GetThreadDetail)

	authorized := route.Group("/")
	authorized.Use(auth)
	{
		authorized.POST("/threads", threads.AddThread)
		authorized.POST("/threads/:threadId/comments", comments.AddComment)
		authorized.DELETE("/threads/:threadId/comments/:commentId", comments.RemoveComment)
		authorized.PUT("/threads/:threadId/comments/:commentId/likes", comments.LikeUnlikeComment)
		authorized.POST("/threads/:threadId/comments/:commentId/replies", replies.AddReply)
		authorized.DELETE("/threads/:threadId/comments/:commentId/replies/:replyId", replies.RemoveReply)
	}
}
