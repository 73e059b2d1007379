package collision

import "github.com/solarium-engine/solarium/internal/entity"

// DispatchDetectors walks the map's detectors list and notifies any
// detector whose configured collision mode currently overlaps mover
// (spec.md §4.F "detector dispatch"), called after mover's position
// update succeeds.
func (r *Resolver) DispatchDetectors(mover *entity.Entity) {
	for _, d := range r.mapData.Detectors() {
		if d == mover || d.BeingRemoved || mover.BeingRemoved {
			continue
		}
		if !d.DetectorLayerIgnored() && d.Layer != mover.Layer {
			continue
		}
		if entity.Overlaps(d.DetectorMode(), d, mover) {
			d.NotifyCollision(mover, d.DetectorMode())
		}
	}
}
