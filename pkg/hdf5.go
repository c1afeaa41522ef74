package events

import (
	hdf5 "github.com/jmbenlloch/go-hdf5"
)

// EventInfoHDF5 is one row of the per-partition "events" table, linking each
// written record back to its line in the source file.
type EventInfoHDF5 struct {
	evt_number int32
	src_line   int32
}

func openFile(fname string) (*hdf5.File, error) {
	f, err := hdf5.CreateFile(fname, hdf5.F_ACC_TRUNC)
	if err != nil {
		return nil, &ErrOpenFile{Filename: fname, Err: err}
	}
	return f, nil
}

func createGroup(file *hdf5.File, groupName string) (*hdf5.Group, error) {
	g, err := file.CreateGroup(groupName)
	if err != nil {
		return nil, &ErrCreateGroup{GroupName: groupName, Err: err}
	}
	return g, nil
}

func createImageArray(group *hdf5.Group, name string) (*hdf5.Dataset, error) {
	dims := []uint{0, ImageSize, ImageSize}
	unlimitedDims := -1 // H5S_UNLIMITED is -1L
	maxDims := []uint{uint(unlimitedDims), ImageSize, ImageSize}
	chunks := []uint{64, ImageSize, ImageSize}
	return createArray(group, name, hdf5.T_NATIVE_DOUBLE, dims, maxDims, chunks)
}

func create2dArray(group *hdf5.Group, name string, width int) (*hdf5.Dataset, error) {
	dims := []uint{0, uint(width)}
	unlimitedDims := -1 // H5S_UNLIMITED is -1L
	maxDims := []uint{uint(unlimitedDims), uint(width)}
	chunks := []uint{4096, uint(width)}
	return createArray(group, name, hdf5.T_NATIVE_DOUBLE, dims, maxDims, chunks)
}

func createLabelArray(group *hdf5.Group, name string) (*hdf5.Dataset, error) {
	dims := []uint{0}
	unlimitedDims := -1 // H5S_UNLIMITED is -1L
	maxDims := []uint{uint(unlimitedDims)}
	chunks := []uint{32768}
	return createArray(group, name, hdf5.T_NATIVE_INT32, dims, maxDims, chunks)
}

func createArray(group *hdf5.Group, name string, dtype *hdf5.Datatype,
	dims []uint, maxDims []uint, chunks []uint) (*hdf5.Dataset, error) {
	fileSpace, err := hdf5.CreateSimpleDataspace(dims, maxDims)
	if err != nil {
		return nil, &ErrCreateDataset{DatasetName: name, Err: err}
	}

	plist, err := hdf5.NewPropList(hdf5.P_DATASET_CREATE)
	if err != nil {
		return nil, &ErrCreateDataset{DatasetName: name, Err: err}
	}
	plist.SetChunk(chunks)
	plist.SetDeflate(configuration.CompressionLevel)

	dataset, err := group.CreateDatasetWith(name, dtype, fileSpace, plist)
	if err != nil {
		return nil, &ErrCreateDataset{DatasetName: name, Err: err}
	}
	return dataset, nil
}

func createTable(group *hdf5.Group, name string, datatype interface{}) (*hdf5.Dataset, error) {
	dims := []uint{0}
	unlimitedDims := -1 // H5S_UNLIMITED is -1L
	maxDims := []uint{uint(unlimitedDims)}
	fileSpace, err := hdf5.CreateSimpleDataspace(dims, maxDims)
	if err != nil {
		return nil, &ErrCreateDataset{DatasetName: name, Err: err}
	}

	plist, err := hdf5.NewPropList(hdf5.P_DATASET_CREATE)
	if err != nil {
		return nil, &ErrCreateDataset{DatasetName: name, Err: err}
	}
	chunks := []uint{32768}
	plist.SetChunk(chunks)
	plist.SetDeflate(configuration.CompressionLevel)

	dtype, err := hdf5.NewDatatypeFromValue(datatype)
	if err != nil {
		return nil, &ErrCreateDataset{DatasetName: name, Err: err}
	}

	dataset, err := group.CreateDatasetWith(name, dtype, fileSpace, plist)
	if err != nil {
		return nil, &ErrCreateDataset{DatasetName: name, Err: err}
	}
	return dataset, nil
}

func writeEntryToTable[T any](dataset *hdf5.Dataset, data T, evtCounter int) error {
	array := []T{data}
	return writeArrayToTable(dataset, &array, evtCounter)
}

func writeArrayToTable[T any](dataset *hdf5.Dataset, data *[]T, evtCounter int) error {
	length := uint(len(*data))
	dims := []uint{length}
	dataspace, err := hdf5.CreateSimpleDataspace(dims, nil)
	if err != nil {
		return err
	}

	// extend
	rowsInFile := uint(evtCounter)
	newsize := []uint{rowsInFile + length}
	dataset.Resize(newsize)
	filespace := dataset.Space()

	start := []uint{rowsInFile}
	count := []uint{length}
	filespace.SelectHyperslab(start, nil, count, nil)

	if err := dataset.WriteSubset(data, dataspace, filespace); err != nil {
		return err
	}

	dataspace.Close()
	filespace.Close()
	return nil
}

func write3dArray(dataset *hdf5.Dataset, data *[]float64, evtCounter int, rows int, cols int) error {
	// extend
	newsize := []uint{uint(evtCounter) + 1, uint(rows), uint(cols)}
	dataset.Resize(newsize)
	filespace := dataset.Space()

	start := []uint{uint(evtCounter), 0, 0}
	count := []uint{1, uint(rows), uint(cols)}
	filespace.SelectHyperslab(start, nil, count, nil)

	dataspace, err := hdf5.CreateSimpleDataspace(count, nil)
	if err != nil {
		return err
	}

	if err := dataset.WriteSubset(data, dataspace, filespace); err != nil {
		return err
	}

	dataspace.Close()
	filespace.Close()
	return nil
}

func write2dArray(dataset *hdf5.Dataset, data *[]float64, evtCounter int, width int) error {
	// extend
	newsize := []uint{uint(evtCounter) + 1, uint(width)}
	dataset.Resize(newsize)
	filespace := dataset.Space()

	start := []uint{uint(evtCounter), 0}
	count := []uint{1, uint(width)}
	filespace.SelectHyperslab(start, nil, count, nil)

	dataspace, err := hdf5.CreateSimpleDataspace(count, nil)
	if err != nil {
		return err
	}

	if err := dataset.WriteSubset(data, dataspace, filespace); err != nil {
		return err
	}

	dataspace.Close()
	filespace.Close()
	return nil
}

func write1dArray(dataset *hdf5.Dataset, data *[]int32, evtCounter int) error {
	length := uint(len(*data))
	// extend
	newsize := []uint{uint(evtCounter) + length}
	dataset.Resize(newsize)
	filespace := dataset.Space()

	start := []uint{uint(evtCounter)}
	count := []uint{length}
	filespace.SelectHyperslab(start, nil, count, nil)

	dataspace, err := hdf5.CreateSimpleDataspace(count, nil)
	if err != nil {
		return err
	}

	if err := dataset.WriteSubset(data, dataspace, filespace); err != nil {
		return err
	}

	dataspace.Close()
	filespace.Close()
	return nil
}
