package nitaqat

var MapToResponse = mapToResponse
