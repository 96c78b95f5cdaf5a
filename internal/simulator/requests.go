package simulator

import (
	"github.com/emrzvv/gamma-research/distribution"
	"github.com/emrzvv/gamma-research/internal/balancer"
	"github.com/emrzvv/gamma-research/internal/common"
	"github.com/emrzvv/gamma-research/internal/config"
	"github.com/emrzvv/gamma-research/internal/stats"
	"github.com/fschuetz04/simgo"
)

func generateRequests(
	proc simgo.Process,
	sim *simgo.Simulation,
	cfg *config.Config,
	rc *rateCtrl,
	svc distribution.Gamma,
	balancer balancer.Balancer,
	st *stats.Statistics,
	rng *common.RNG) {

	var requestID int64
	for {
		rate := rc.Get()
		ia := rng.ExpFloat64() / rate
		if ia < 1e-6 { // TODO: to config?
			ia = 1e-6
		}
		proc.Wait(proc.Timeout(ia))
		now := proc.Now()

		requestID++
		st.AddArrival(&stats.ArrivalEvent{T: now, RequestID: requestID})

		pickedServer := balancer.PickServer(requestID)
		if pickedServer == nil {
			st.AddDrop(&stats.DropEvent{
				ServerID: 0, RequestID: requestID, T: now, Reason: "no_server"})
			continue
		}
		st.AddPick(pickedServer.ID - 1)

		id := requestID
		sim.Process(func(req simgo.Process) {
			start := req.Now()
			if ok := pickedServer.HandleRequest(req, start, svc, st, rng); !ok {
				st.AddDrop(&stats.DropEvent{
					ServerID:  pickedServer.ID,
					RequestID: id,
					T:         start,
					Reason:    "overloaded",
				})
			}
		})
	}
}
