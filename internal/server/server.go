package server

// Server joins the per-screen HTTP servers into one router.
type Server struct {
	DealsServer
	ImagesServer
}

func NewServer(
	dealsServer DealsServer,
	imagesServer ImagesServer,
) Server {
	return Server{
		DealsServer:  dealsServer,
		ImagesServer: imagesServer,
	}
}
