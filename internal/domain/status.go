package domain

// List of possible rider statuses
const (
	RiderOffline    RiderStatus = "offline"
	RiderAvailable  RiderStatus = "available"
	RiderBusy       RiderStatus = "busy"
	RiderOnDelivery RiderStatus = "on_delivery"
	RiderOnBreak    RiderStatus = "on_break"
)

// List of supported vehicle types
const (
	VehicleBicycle    VehicleType = "bicycle"
	VehicleScooter    VehicleType = "scooter"
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleCar        VehicleType = "car"
)

var allowedRiderStatuses = [...]RiderStatus{
	RiderOffline, RiderAvailable, RiderBusy, RiderOnDelivery, RiderOnBreak,
}

var allowedVehicleTypes = [...]VehicleType{
	VehicleBicycle, VehicleScooter, VehicleMotorcycle, VehicleCar,
}

// average speed in km/h used for duration estimates
var vehicleSpeedKmh = map[VehicleType]float64{
	VehicleBicycle:    15,
	VehicleScooter:    22,
	VehicleMotorcycle: 30,
	VehicleCar:        28,
}

// Valid checks if the RiderStatus is valid
func (s RiderStatus) Valid() bool {
	for _, v := range allowedRiderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Valid checks if the VehicleType is valid
func (t VehicleType) Valid() bool {
	for _, v := range allowedVehicleTypes {
		if t == v {
			return true
		}
	}
	return false
}

// AverageSpeedKmh returns the speed used to estimate delivery duration.
func (t VehicleType) AverageSpeedKmh() float64 {
	if v, ok := vehicleSpeedKmh[t]; ok {
		return v
	}
	return vehicleSpeedKmh[VehicleScooter]
}
